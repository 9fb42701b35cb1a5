package cli

import (
	"context"
	"fmt"
	"log"
)

// Buy starts a checkout for a paid course and prints the approval URL the
// buyer has to visit. The order is finalized with "capture" afterwards.
func (a *App) Buy(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	checkout, err := a.payments.Checkout(ctx, id)
	if err != nil {
		log.Printf("Checkout failed: %s", err.Error())
		return err
	}

	fmt.Printf("Order %s created\n", checkout.OrderID)
	fmt.Printf("Approve the payment at: %s\n", checkout.ApprovalURL)
	fmt.Printf("Then run: capture %s\n", checkout.OrderID)
	return nil
}

// Capture finalizes an approved order. On success the backend has already
// created the enrollment.
func (a *App) Capture(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter order id")
	if err != nil {
		return err
	}

	capture, err := a.payments.Capture(ctx, id)
	if err != nil {
		log.Printf("Capture failed: %s", err.Error())
		return err
	}

	fmt.Println(capture.Message)
	fmt.Printf("Payment %s: %s %.2f %s\n",
		capture.Payment.ID, capture.Payment.Status, capture.Payment.Amount, capture.Payment.Currency)
	return nil
}

// Subscriptions lists the user's subscriptions as raw records. The backend
// proxies the payment provider here and the shape varies by provider.
func (a *App) Subscriptions(ctx context.Context) error {
	subs, err := a.payments.Subscriptions(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, s := range subs {
		fmt.Println(string(s))
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions")
	}
	return nil
}

// Subscribe creates a subscription order for the given plan.
func (a *App) Subscribe(ctx context.Context, args []string) error {
	plan, err := a.argOrPrompt(args, "Enter plan type")
	if err != nil {
		return err
	}

	sub, err := a.payments.CreateSubscription(ctx, plan)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Order %s created\n", sub.OrderID)
	fmt.Printf("Approve the subscription at: %s\n", sub.URL)
	return nil
}

// Unsubscribe cancels a subscription.
func (a *App) Unsubscribe(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter subscription id")
	if err != nil {
		return err
	}

	msg, err := a.payments.CancelSubscription(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}
