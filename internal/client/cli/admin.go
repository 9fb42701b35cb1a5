package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// Inquiries lists contact inquiries, optionally filtered by status
// (NEW, IN_PROGRESS, RESOLVED).
func (a *App) Inquiries(ctx context.Context, args []string) error {
	var status models.InquiryStatus
	if len(args) > 0 {
		status = models.InquiryStatus(strings.ToUpper(args[0]))
	}

	inquiries, err := a.contact.List(ctx, status)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, q := range inquiries {
		fmt.Printf("%s  %-11s  %s <%s>  %q\n", q.ID, q.Status, q.Name, q.Email, q.Subject)
	}
	if len(inquiries) == 0 {
		fmt.Println("No inquiries")
	}
	return nil
}

// TriageInquiry moves an inquiry to a new status: triage <id> <status>.
func (a *App) TriageInquiry(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Println("Usage: triage <id> <status>")
		return nil
	}
	id := args[0]
	status := models.InquiryStatus(strings.ToUpper(args[1]))

	q, err := a.contact.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Inquiry %s is now %s\n", q.ID, q.Status)
	return nil
}

// InquiryStats prints the inquiry totals by status.
func (a *App) InquiryStats(ctx context.Context) error {
	stats, err := a.contact.Stats(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Total: %d\n", stats.Total)
	fmt.Printf("New: %d  In progress: %d  Resolved: %d\n",
		stats.ByStatus.New, stats.ByStatus.InProgress, stats.ByStatus.Resolved)
	return nil
}
