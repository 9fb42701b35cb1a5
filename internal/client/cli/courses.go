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

// argOrPrompt returns the first positional argument if present, otherwise
// asks the user for it.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// Courses lists the published catalog. An optional argument is used as a
// full-text search term.
func (a *App) Courses(ctx context.Context, args []string) error {
	var filters *services.CourseFilters
	if len(args) > 0 {
		filters = &services.CourseFilters{Search: strings.Join(args, " ")}
	}

	courses, err := a.courses.List(ctx, filters)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, c := range courses {
		fmt.Printf("%s  %-40s  %s  $%.2f\n", c.ID, c.Title, c.Level, c.Price)
	}
	if len(courses) == 0 {
		fmt.Println("No courses found")
	}
	return nil
}

// Course shows one course with its content outline.
func (a *App) Course(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	c, err := a.courses.Get(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("%s (%s, %s)\n", c.Title, c.Category, c.Level)
	fmt.Println(c.Description)
	fmt.Printf("Price: $%.2f  Rating: %.1f (%d reviews)  Enrolled: %d\n",
		c.Price, c.AverageRating, c.TotalReviews, c.TotalEnrollments)

	sections, err := a.courses.Lessons(ctx, id)
	if err != nil {
		// The outline is gated for paid courses; the summary above is
		// still useful on its own.
		return nil
	}
	for _, s := range sections {
		fmt.Printf("== %s\n", s.Title)
		for _, l := range s.Lessons {
			marker := " "
			if l.IsFree {
				marker = "*"
			}
			fmt.Printf(" %s %s (%s)\n", marker, l.Title, l.ContentType)
		}
	}
	return nil
}

// MyCourses lists courses the current user is enrolled in.
func (a *App) MyCourses(ctx context.Context) error {
	courses, err := a.courses.Enrolled(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, c := range courses {
		fmt.Printf("%s  %s\n", c.ID, c.Title)
	}
	if len(courses) == 0 {
		fmt.Println("You are not enrolled in any course")
	}
	return nil
}

// Enroll enrolls the current user into a free course. Paid courses go
// through "buy" instead.
func (a *App) Enroll(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	res, err := a.courses.Enroll(ctx, id)
	if err != nil {
		log.Printf("Enrollment failed: %s", err.Error())
		return err
	}
	fmt.Println(res.Message)
	return nil
}

// Progress prints the per-course completion summary.
func (a *App) Progress(ctx context.Context) error {
	progress, err := a.learning.Progress(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, p := range progress {
		fmt.Printf("%-40s %6.1f%%  %d/%d lessons  %s\n",
			p.CourseTitle, p.Progress, p.CompletedLessons, p.TotalLessons, p.CompletionStatus)
	}
	if len(progress) == 0 {
		fmt.Println("No progress yet")
	}
	return nil
}

// CompleteLesson marks a lesson as completed.
func (a *App) CompleteLesson(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter lesson id")
	if err != nil {
		return err
	}

	msg, err := a.learning.UpdateProgress(ctx, services.ProgressUpdate{
		LessonID:         id,
		CompletionStatus: models.ProgressCompleted,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}

// SubmitQuiz collects answers as "question=option" pairs and submits one
// quiz attempt.
func (a *App) SubmitQuiz(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter quiz id")
	if err != nil {
		return err
	}

	fmt.Println("Enter answers as questionIndex=optionIndex, one per line (empty line to finish)")
	answers := services.QuizAnswers{}
	for {
		line, _ := a.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		q, v, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Println("Expected questionIndex=optionIndex")
			continue
		}
		option, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			fmt.Println("Option must be a number")
			continue
		}
		answers[strings.TrimSpace(q)] = option
	}

	attempt, err := a.learning.SubmitQuiz(ctx, id, answers)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	verdict := "failed"
	if attempt.Passed {
		verdict = "passed"
	}
	fmt.Printf("Score %d%% (%d/%d correct), %s\n",
		attempt.Score, attempt.CorrectAnswers, attempt.TotalQuestions, verdict)
	return nil
}

// Reviews lists reviews for a course.
func (a *App) Reviews(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	reviews, err := a.courses.Reviews(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, r := range reviews {
		fmt.Printf("%.0f/5  %s\n", r.Rating, r.ReviewText)
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews yet")
	}
	return nil
}

// AddReview posts a review for an enrolled course.
func (a *App) AddReview(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}
	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.ParseFloat(ratingText, 64)
	if err != nil {
		fmt.Println("Rating must be a number")
		return err
	}
	text, err := GetMultiline(a.reader, "Review text", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.courses.AddReview(ctx, id, services.ReviewInput{Rating: rating, ReviewText: text})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}

// NewCourse creates a draft course owned by the current instructor.
func (a *App) NewCourse(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		fmt.Println("Price must be a number")
		return err
	}

	c, err := a.courses.Create(ctx, services.CourseInput{
		Title:       title,
		Description: description,
		Category:    category,
		Price:       &price,
		Level:       models.LevelAll,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Created course %s (%s)\n", c.ID, c.Status)
	return nil
}

// DeleteCourse removes a course the current user owns.
func (a *App) DeleteCourse(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}
	msg, err := a.courses.Delete(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}
