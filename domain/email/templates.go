package email

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// Handlebars sources for the transactional emails. Compiled once at
// package init; a broken template is a programming error.
const welcomeTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8f9fa; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 30px auto; background-color: #ffffff; border: 1px solid #dee2e6; border-radius: 8px; overflow: hidden;">
    <div style="background-color: #4a90e2; color: #ffffff; padding: 20px 30px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">{{subject}}</h1>
    </div>
    <div style="padding: 35px 45px; line-height: 1.7; color: #343a40;">
      <p>Dear User,</p>
      <p>Welcome to EvoKG! We are thrilled to have you on board.</p>
      <p>EvoKG is a platform designed to help you explore and understand complex knowledge graphs. We hope you find it useful and insightful.</p>
      <p>If you have any questions or need assistance, please don't hesitate to reach out to our support team.</p>
      <p>Best regards,<br><strong>The EvoKG Team</strong></p>
    </div>
    <div style="text-align: center; padding: 25px; font-size: 13px; color: #6c757d; background-color: #e9ecef;">
      <p>&copy; {{year}} EvoKG. All rights reserved.</p>
      <p>This is an automated message. Please do not reply directly to this email.</p>
    </div>
  </div>
</body>
</html>`

const newUserTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8f9fa; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 30px auto; background-color: #ffffff; border: 1px solid #dee2e6; border-radius: 8px; overflow: hidden;">
    <div style="background-color: #2c3e50; color: #ffffff; padding: 20px 30px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">New EvoKG Signup</h1>
    </div>
    <div style="padding: 35px 45px; line-height: 1.7; color: #343a40;">
      <p>A new user just registered:</p>
      <ul>
        <li><strong>Username:</strong> {{username}}</li>
        <li><strong>Name:</strong> {{firstName}} {{lastName}}</li>
        <li><strong>Email:</strong> {{email}}</li>
        <li><strong>Organization:</strong> {{organization}}</li>
      </ul>
    </div>
    <div style="text-align: center; padding: 25px; font-size: 13px; color: #6c757d; background-color: #e9ecef;">
      <p>&copy; {{year}} EvoKG. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`

var (
	welcomeTmpl = raymond.MustParse(welcomeTemplate)
	newUserTmpl = raymond.MustParse(newUserTemplate)
)

// renderWelcome renders the welcome email body
func renderWelcome(subject string, year int) (string, error) {
	html, err := welcomeTmpl.Exec(map[string]any{
		"subject": subject,
		"year":    year,
	})
	if err != nil {
		return "", fmt.Errorf("render welcome template: %w", err)
	}
	return html, nil
}

// renderNewUser renders the admin notification body
func renderNewUser(n NewUserNotification, year int) (string, error) {
	html, err := newUserTmpl.Exec(map[string]any{
		"username":     n.Username,
		"firstName":    n.FirstName,
		"lastName":     n.LastName,
		"email":        n.Email,
		"organization": n.Organization,
		"year":         year,
	})
	if err != nil {
		return "", fmt.Errorf("render new user template: %w", err)
	}
	return html, nil
}
