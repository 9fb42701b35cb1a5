package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/epicrobotics/academy-cli/internal/client/services"
)

// Paths lists the published learning paths with their course sequences.
func (a *App) Paths(ctx context.Context) error {
	paths, err := a.paths.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, p := range paths {
		fmt.Printf("%s  %s (%s, %d courses)\n", p.ID, p.Title, p.Difficulty, p.TotalCourses)
		for _, c := range p.Courses {
			fmt.Printf("  %d. %s\n", c.OrderInPath, c.Title)
		}
	}
	if len(paths) == 0 {
		fmt.Println("No learning paths")
	}
	return nil
}

// Products lists the published product landing entries.
func (a *App) Products(ctx context.Context) error {
	products, err := a.products.List(ctx, false)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, p := range products {
		fmt.Printf("%s  %s\n", p.ID, p.Title)
		for _, f := range p.Features {
			fmt.Printf("  - %s\n", f.Subtitle)
		}
	}
	if len(products) == 0 {
		fmt.Println("No products")
	}
	return nil
}

// Contact submits a contact inquiry to the support team.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Your email", os.Stdout)
	if err != nil {
		return err
	}
	subject, err := getSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.contact.Submit(ctx, services.ContactInput{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(res.Message)
	fmt.Printf("Inquiry id: %s\n", res.Inquiry.ID)
	return nil
}
