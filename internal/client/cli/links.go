package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/epicrobotics/academy-cli/internal/client/services"
)

// LinkInfo previews an access link before redeeming it. Works without a
// session so an invitee can inspect what they were sent.
func (a *App) LinkInfo(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter link token")
	if err != nil {
		return err
	}

	info, err := a.links.Info(ctx, token)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !info.IsValid {
		fmt.Println("This link is no longer valid")
		return nil
	}
	fmt.Printf("Course: %s by %s\n", info.Course.Title, info.Course.Instructor.Name)
	fmt.Printf("Uses: %d/%d", info.UsedCount, info.MaxUses)
	if info.ExpiresAt != "" {
		fmt.Printf("  Expires: %s", info.ExpiresAt)
	}
	fmt.Println()
	return nil
}

// RedeemLink redeems an access link, enrolling the current user for free.
func (a *App) RedeemLink(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter link token")
	if err != nil {
		return err
	}

	res, err := a.links.Redeem(ctx, token)
	if err != nil {
		log.Printf("Redemption failed: %s", err.Error())
		return err
	}
	fmt.Println(res.Message)
	return nil
}

// GenerateLink mints a new access link for a course the current user
// teaches.
func (a *App) GenerateLink(ctx context.Context, args []string) error {
	courseID, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}
	maxUsesText, err := getSimpleText(a.reader, "Max uses (empty for 1)", os.Stdout)
	if err != nil {
		return err
	}
	var input services.AccessLinkInput
	if maxUsesText != "" {
		maxUses, err := strconv.Atoi(maxUsesText)
		if err != nil {
			fmt.Println("Max uses must be a number")
			return err
		}
		input.MaxUses = maxUses
	}

	link, err := a.courses.GenerateAccessLink(ctx, courseID, input)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Link %s created\n", link.ID)
	fmt.Println("Share:", link.URL)
	return nil
}

// CourseLinks lists the access links minted for a course.
func (a *App) CourseLinks(ctx context.Context, args []string) error {
	courseID, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	links, err := a.courses.AccessLinks(ctx, courseID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, l := range links {
		state := "unused"
		switch {
		case l.IsUsed:
			state = "used by " + l.UsedBy
		case l.IsExpired:
			state = "expired"
		}
		fmt.Printf("%s  %s  %s\n", l.ID, l.Token, state)
	}
	if len(links) == 0 {
		fmt.Println("No links for this course")
	}
	return nil
}

// RevokeLink invalidates an unused access link.
func (a *App) RevokeLink(ctx context.Context, args []string) error {
	linkID, err := a.argOrPrompt(args, "Enter link id")
	if err != nil {
		return err
	}

	msg, err := a.links.Revoke(ctx, linkID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}
