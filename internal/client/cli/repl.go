package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	hasAnyRole(roles ...models.UserRole) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	RefreshSession(ctx context.Context) error
	SessionStatus(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	Courses(ctx context.Context, args []string) error
	Course(ctx context.Context, args []string) error
	MyCourses(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Progress(ctx context.Context) error
	CompleteLesson(ctx context.Context, args []string) error
	SubmitQuiz(ctx context.Context, args []string) error
	Reviews(ctx context.Context, args []string) error
	AddReview(ctx context.Context, args []string) error
	NewCourse(ctx context.Context) error
	DeleteCourse(ctx context.Context, args []string) error

	Paths(ctx context.Context) error
	Products(ctx context.Context) error
	Contact(ctx context.Context) error

	Buy(ctx context.Context, args []string) error
	Capture(ctx context.Context, args []string) error
	Subscriptions(ctx context.Context) error
	Subscribe(ctx context.Context, args []string) error
	Unsubscribe(ctx context.Context, args []string) error

	Certificates(ctx context.Context) error
	IssueCertificate(ctx context.Context, args []string) error
	VerifyCertificate(ctx context.Context, args []string) error
	CertificateLink(ctx context.Context, args []string) error

	Mentors(ctx context.Context) error
	Sessions(ctx context.Context) error
	BookSession(ctx context.Context) error
	MyAvailability(ctx context.Context) error
	SetAvailability(ctx context.Context) error

	LinkInfo(ctx context.Context, args []string) error
	RedeemLink(ctx context.Context, args []string) error
	GenerateLink(ctx context.Context, args []string) error
	CourseLinks(ctx context.Context, args []string) error
	RevokeLink(ctx context.Context, args []string) error

	Inquiries(ctx context.Context, args []string) error
	TriageInquiry(ctx context.Context, args []string) error
	InquiryStats(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them on a.
//
// Protected commands are gated here: commands that need a session check
// isLoggedIn, back-office commands additionally check the identity's role
// against the allowed set. Gating mirrors what the backend enforces; the
// server remains the authority.
//
// Command handler errors are ignored by the loop; handlers print their own
// feedback. The loop exits on scanner EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	staff := []models.UserRole{models.RoleInstructor, models.RoleAdmin}

	requireAuth := func(fn func() error) {
		if !a.isLoggedIn() {
			printlnFn("Please login first")
			return
		}
		_ = fn()
	}
	requireRole := func(fn func() error, roles ...models.UserRole) {
		if !a.hasAnyRole(roles...) {
			printlnFn("You are not allowed to do that")
			return
		}
		_ = fn()
	}

	for {
		printlnFn(fmt.Sprintf("academy> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		// public
		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Register(ctx)
		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Login(ctx)
		case "courses":
			_ = a.Courses(ctx, args)
		case "course":
			_ = a.Course(ctx, args)
		case "paths":
			_ = a.Paths(ctx)
		case "products":
			_ = a.Products(ctx)
		case "reviews":
			_ = a.Reviews(ctx, args)
		case "verify":
			_ = a.VerifyCertificate(ctx, args)
		case "link":
			_ = a.LinkInfo(ctx, args)
		case "contact":
			_ = a.Contact(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			_ = a.ResetPassword(ctx)

		// session required
		case "whoami":
			requireAuth(func() error { return a.WhoAmI(ctx) })
		case "refresh":
			requireAuth(func() error { return a.RefreshSession(ctx) })
		case "status":
			requireAuth(func() error { return a.SessionStatus(ctx) })
		case "profile":
			requireAuth(func() error { return a.EditProfile(ctx) })
		case "passwd":
			requireAuth(func() error { return a.ChangePassword(ctx) })
		case "close-account":
			requireAuth(func() error { return a.DeleteAccount(ctx) })
		case "my":
			requireAuth(func() error { return a.MyCourses(ctx) })
		case "enroll":
			requireAuth(func() error { return a.Enroll(ctx, args) })
		case "redeem":
			requireAuth(func() error { return a.RedeemLink(ctx, args) })
		case "progress":
			requireAuth(func() error { return a.Progress(ctx) })
		case "complete":
			requireAuth(func() error { return a.CompleteLesson(ctx, args) })
		case "quiz":
			requireAuth(func() error { return a.SubmitQuiz(ctx, args) })
		case "review":
			requireAuth(func() error { return a.AddReview(ctx, args) })
		case "buy":
			requireAuth(func() error { return a.Buy(ctx, args) })
		case "capture":
			requireAuth(func() error { return a.Capture(ctx, args) })
		case "subs":
			requireAuth(func() error { return a.Subscriptions(ctx) })
		case "subscribe":
			requireAuth(func() error { return a.Subscribe(ctx, args) })
		case "unsubscribe":
			requireAuth(func() error { return a.Unsubscribe(ctx, args) })
		case "certs":
			requireAuth(func() error { return a.Certificates(ctx) })
		case "issue":
			requireAuth(func() error { return a.IssueCertificate(ctx, args) })
		case "certlink":
			requireAuth(func() error { return a.CertificateLink(ctx, args) })
		case "mentors":
			requireAuth(func() error { return a.Mentors(ctx) })
		case "sessions":
			requireAuth(func() error { return a.Sessions(ctx) })
		case "book":
			requireAuth(func() error { return a.BookSession(ctx) })
		case "logout":
			requireAuth(func() error { return a.Logout(ctx) })

		// instructor/admin
		case "newcourse":
			requireRole(func() error { return a.NewCourse(ctx) }, staff...)
		case "delcourse":
			requireRole(func() error { return a.DeleteCourse(ctx, args) }, staff...)
		case "avail":
			requireRole(func() error { return a.MyAvailability(ctx) }, staff...)
		case "setavail":
			requireRole(func() error { return a.SetAvailability(ctx) }, staff...)
		case "genlink":
			requireRole(func() error { return a.GenerateLink(ctx, args) }, staff...)
		case "courselinks":
			requireRole(func() error { return a.CourseLinks(ctx, args) }, staff...)
		case "revoke":
			requireRole(func() error { return a.RevokeLink(ctx, args) }, staff...)

		// admin only
		case "inquiries":
			requireRole(func() error { return a.Inquiries(ctx, args) }, models.RoleAdmin)
		case "triage":
			requireRole(func() error { return a.TriageInquiry(ctx, args) }, models.RoleAdmin)
		case "stats":
			requireRole(func() error { return a.InquiryStats(ctx) }, models.RoleAdmin)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Public: courses, course <id>, reviews <courseId>, paths, products, verify <code>, link <token>, contact")
	if !a.isLoggedIn() {
		printlnFn("Account: register, login, forgot, reset, exit")
		return
	}
	printlnFn("Account: whoami, status, profile, passwd, refresh, close-account, logout, exit")
	printlnFn("Learning: my, enroll <courseId>, redeem <token>, progress, complete <lessonId>, quiz <quizId>, review <courseId>")
	printlnFn("Payments: buy <courseId>, capture <orderId>, subs, subscribe <plan>, unsubscribe <id>")
	printlnFn("Certificates: certs, issue <courseId>, certlink <certificateId>")
	printlnFn("Mentoring: mentors, sessions, book")
	if a.hasAnyRole(models.RoleInstructor, models.RoleAdmin) {
		printlnFn("Teaching: newcourse, delcourse <id>, avail, setavail")
		printlnFn("Access links: genlink <courseId>, courselinks <courseId>, revoke <linkId>")
	}
	if a.hasAnyRole(models.RoleAdmin) {
		printlnFn("Admin: inquiries [status], triage <id> <status>, stats")
	}
}
