package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/epicrobotics/academy-cli/internal/client/models"
	"github.com/epicrobotics/academy-cli/internal/client/services"
)

// Mentors lists instructors offering mentoring, with their weekly slots.
func (a *App) Mentors(ctx context.Context) error {
	instructors, err := a.mentoring.Instructors(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, ins := range instructors {
		name := ins.ID
		if ins.User != nil {
			name = ins.User.ProfileData.Name
		}
		fmt.Printf("%s  %s  (%s)\n", ins.ID, name, strings.Join(ins.Expertise, ", "))

		slots, err := a.mentoring.InstructorAvailability(ctx, ins.ID)
		if err != nil {
			continue
		}
		for _, s := range slots {
			fmt.Printf("  %s %s-%s\n", s.DayOfWeek, s.StartTime, s.EndTime)
		}
	}
	if len(instructors) == 0 {
		fmt.Println("No mentors available")
	}
	return nil
}

// Sessions lists the user's mentoring sessions, booked or given.
func (a *App) Sessions(ctx context.Context) error {
	sessions, err := a.mentoring.MySessions(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, s := range sessions {
		fmt.Printf("%s  %s  %dmin  %s  %q\n", s.ID, s.ScheduledAt, s.Duration, s.Status, s.Topic)
		if s.MeetingLink != "" {
			fmt.Printf("  meeting: %s\n", s.MeetingLink)
		}
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions")
	}
	return nil
}

// BookSession books a mentoring session with an instructor.
func (a *App) BookSession(ctx context.Context) error {
	instructorID, err := getSimpleText(a.reader, "Instructor id", os.Stdout)
	if err != nil {
		return err
	}
	scheduledAt, err := getSimpleText(a.reader, "When (RFC 3339, e.g. 2026-09-01T15:00:00Z)", os.Stdout)
	if err != nil {
		return err
	}
	durationText, err := getSimpleText(a.reader, "Duration in minutes", os.Stdout)
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(durationText)
	if err != nil {
		fmt.Println("Duration must be a number")
		return err
	}
	topic, err := getSimpleText(a.reader, "Topic", os.Stdout)
	if err != nil {
		return err
	}

	s, err := a.mentoring.BookSession(ctx, services.BookSessionInput{
		InstructorID: instructorID,
		ScheduledAt:  scheduledAt,
		Duration:     duration,
		Topic:        topic,
	})
	if err != nil {
		log.Printf("Booking failed: %s", err.Error())
		return err
	}
	fmt.Printf("Booked session %s at %s\n", s.ID, s.ScheduledAt)
	return nil
}

// MyAvailability lists the current instructor's weekly slots.
func (a *App) MyAvailability(ctx context.Context) error {
	slots, err := a.mentoring.MyAvailability(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, s := range slots {
		state := "inactive"
		if s.IsActive {
			state = "active"
		}
		fmt.Printf("%s  %s %s-%s  %s\n", s.ID, s.DayOfWeek, s.StartTime, s.EndTime, state)
	}
	if len(slots) == 0 {
		fmt.Println("No availability configured")
	}
	return nil
}

// SetAvailability adds a weekly availability slot for the current
// instructor.
func (a *App) SetAvailability(ctx context.Context) error {
	day, err := getSimpleText(a.reader, "Day of week (e.g. MONDAY)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := getSimpleText(a.reader, "Start time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}

	slot, err := a.mentoring.SetAvailability(ctx, services.AvailabilityInput{
		DayOfWeek: models.DayOfWeek(strings.ToUpper(day)),
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Added slot %s\n", slot.ID)
	return nil
}
