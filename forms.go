package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aisnakk/site/views"
)

var validate = validator.New()

// contactInput is the contact form payload. The "website" field is the
// honeypot: hidden in the template, it must arrive empty.
type contactInput struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Subject  string `form:"subject" validate:"omitempty,max=200"`
	Message  string `form:"message" validate:"required"`
	Honeypot string `form:"website"`
}

func (in *contactInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

// contactFieldErrors maps validator failures onto per-field messages the
// template renders inline.
func contactFieldErrors(err error) map[string]string {
	msgs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["form"] = "Invalid submission."
		return msgs
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			msgs["name"] = "Please enter your name."
		case "Email":
			if fe.Tag() == "email" {
				msgs["email"] = "Please enter a valid email address."
			} else {
				msgs["email"] = "Please enter your email address."
			}
		case "Subject":
			msgs["subject"] = "Subject is too long."
		case "Message":
			msgs["message"] = "Please enter a message."
		}
	}
	return msgs
}

// handleContact renders the contact form.
func (a *App) handleContact(c echo.Context) error {
	pg := a.viewPage(c, views.Meta{
		Title:  "Contact | " + a.Config.Name,
		URL:    BuildURL(a.Config.URL, "contact"),
		OGType: "website",
	})
	return Render(c, views.Contact(pg, views.ContactForm{}))
}

// handleContactSubmit validates and persists a contact submission.
// Validation failures re-render the form with inline messages at 200; a
// tripped honeypot takes the same path but stores nothing. Success stores
// the message with requester IP and truncated user agent, then redirects
// back with a flash notice.
func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	var in contactInput
	if err := c.Bind(&in); err != nil {
		return a.renderContactErrors(c, in, map[string]string{"form": "Invalid submission."})
	}
	in.trim()

	if in.Honeypot != "" {
		// Spam: respond like any other invalid submission so the bot
		// learns nothing, and keep the database clean.
		c.Logger().Warnf("contact: honeypot triggered from %s", c.RealIP())
		return a.renderContactErrors(c, in, map[string]string{"form": "Invalid submission."})
	}

	if err := validate.Struct(in); err != nil {
		return a.renderContactErrors(c, in, contactFieldErrors(err))
	}

	sub := ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
	if err := a.Store.SaveContactSubmission(&sub); err != nil {
		return err
	}

	if err := addFlash(c, "Thank you for your message! We will get back to you soon."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact/")
}

func (a *App) renderContactErrors(c echo.Context, in contactInput, errs map[string]string) error {
	pg := a.viewPage(c, views.Meta{
		Title:  "Contact | " + a.Config.Name,
		URL:    BuildURL(a.Config.URL, "contact"),
		OGType: "website",
	})
	form := views.ContactForm{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Errors:  errs,
	}
	return Render(c, views.Contact(pg, form))
}

// newsletterResponse is the JSON contract of the signup endpoint. Every
// outcome is an HTTP 200; success distinguishes the cases.
type newsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleNewsletterSignup accepts {"email": "..."} and subscribes the
// address. The insert is atomic on the unique email column, so a repeat or
// concurrent signup reports "already subscribed" instead of duplicating.
func (a *App) handleNewsletterSignup(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusOK, newsletterResponse{Success: false, Error: "Invalid request"})
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return c.JSON(http.StatusOK, newsletterResponse{Success: false, Error: "Email is required"})
	}
	if err := validate.Var(email, "email"); err != nil {
		return c.JSON(http.StatusOK, newsletterResponse{Success: false, Error: "Please enter a valid email address."})
	}

	created, err := a.Store.SubscribeNewsletter(email, c.RealIP())
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(http.StatusOK, newsletterResponse{
			Success: false,
			Error:   "You are already subscribed to our newsletter.",
		})
	}
	return c.JSON(http.StatusOK, newsletterResponse{
		Success: true,
		Message: "Thank you for subscribing to our newsletter!",
	})
}
