package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/handlers"
	"github.com/internlink/internlink-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	studentHandler *handlers.StudentHandler,
	employerHandler *handlers.EmployerHandler,
	internshipHandler *handlers.InternshipHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// Registration is public; accounts land with a status the approval gate
	// reads on every protected request.
	api.Post("/student/register", studentHandler.Register)
	api.Post("/employer/register", employerHandler.Register)

	// Student surface: token, fresh user row, then the approval gate.
	student := api.Group("/student",
		middleware.JWTProtected(cfg),
		middleware.CurrentUser(db),
		middleware.RequireApproved(cfg),
	)
	student.Post("/apply", studentHandler.Apply)
	student.Get("/applications", studentHandler.Applications)
	student.Get("/dashboard", studentHandler.Dashboard)
	student.Put("/dashboard", studentHandler.UpdateProfile)
	student.Put("/password", studentHandler.ChangePassword)

	// Employer surface.
	employer := api.Group("/employer",
		middleware.JWTProtected(cfg),
		middleware.CurrentUser(db),
	)
	employer.Get("/dashboard", employerHandler.Dashboard)
	employer.Get("/internships", employerHandler.MyInternships)
	employer.Get("/internships/:id/applications", employerHandler.ListInternshipApplications)
	employer.Post("/applications/:id/approve", employerHandler.ApproveApplication)
	employer.Post("/applications/:id/reject", employerHandler.RejectApplication)
	employer.Put("/profile", employerHandler.UpdateProfile)
	employer.Put("/password", employerHandler.ChangePassword)

	// Postings: reads are public, writes need an authenticated employer.
	internship := api.Group("/internship")
	internship.Get("/all", internshipHandler.GetAll)
	internship.Post("/create",
		middleware.JWTProtected(cfg),
		middleware.CurrentUser(db),
		middleware.RequireApproved(cfg),
		internshipHandler.Create,
	)
	internship.Put("/:id",
		middleware.JWTProtected(cfg),
		middleware.CurrentUser(db),
		internshipHandler.Update,
	)
	internship.Get("/:id", internshipHandler.GetByID)

	// Admin moderation panel.
	admin := api.Group("/admin",
		middleware.JWTProtected(cfg),
		middleware.CurrentUser(db),
		middleware.AdminRequired(),
	)
	admin.Get("/summary", adminHandler.Summary)
	admin.Get("/internships", adminHandler.ListInternships)
	admin.Get("/applications", adminHandler.ListApplications)
	admin.Post("/internships/:id/approve", adminHandler.ApproveInternship)
	admin.Post("/internships/:id/reject", adminHandler.RejectInternship)
	admin.Post("/applications/:id/approve", adminHandler.ApproveApplication)
	admin.Post("/applications/:id/reject", adminHandler.RejectApplication)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Get("/applications/:id", adminHandler.GetApplication)
	admin.Get("/internships/:id", adminHandler.GetInternship)
}
