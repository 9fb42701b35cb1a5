package cli

import (
	"context"
	"fmt"
	"log"
)

// Certificates lists the certificates earned by the current user.
func (a *App) Certificates(ctx context.Context) error {
	certs, err := a.certificates.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, c := range certs {
		fmt.Printf("%s  %s  issued %s  code %s\n",
			c.ID, c.Metadata.CourseName, c.IssuedAt, c.CertificateCode)
	}
	if len(certs) == 0 {
		fmt.Println("No certificates yet")
	}
	return nil
}

// IssueCertificate requests a certificate for a completed course.
func (a *App) IssueCertificate(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter course id")
	if err != nil {
		return err
	}

	cert, err := a.certificates.Issue(ctx, id)
	if err != nil {
		log.Printf("Certificate request failed: %s", err.Error())
		return err
	}
	fmt.Printf("Certificate %s issued, code %s\n", cert.ID, cert.CertificateCode)
	return nil
}

// VerifyCertificate checks a certificate code against the public registry.
func (a *App) VerifyCertificate(ctx context.Context, args []string) error {
	code, err := a.argOrPrompt(args, "Enter certificate code")
	if err != nil {
		return err
	}

	v, err := a.certificates.Verify(ctx, code)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !v.Valid {
		fmt.Println("Certificate is not valid:", v.Message)
		return nil
	}
	fmt.Printf("Valid certificate %s\n", v.Certificate.Code)
	fmt.Printf("%s completed %q (%s) on %s\n",
		v.Certificate.StudentName, v.Certificate.CourseName, v.Certificate.Category, v.Certificate.IssuedAt)
	return nil
}

// CertificateLink prints browser-ready download and preview URLs for a
// certificate. These endpoints authenticate via a token query parameter
// because browsers cannot attach headers to plain navigation.
func (a *App) CertificateLink(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter certificate id")
	if err != nil {
		return err
	}

	download, err := a.certificates.DownloadURL(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	preview, err := a.certificates.PreviewURL(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Download:", download)
	fmt.Println("Preview: ", preview)
	return nil
}
