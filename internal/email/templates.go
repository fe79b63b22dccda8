package email

import "fmt"

func renderVerificationEmail(link string) string {
	return fmt.Sprintf(`
		<h2>Welcome to GemMarket</h2>
		<p>Please confirm your email address by clicking the link below:</p>
		<p><a href="%s">Verify my account</a></p>
		<p>If you did not create this account, ignore this message.</p>`, link)
}

func renderPasswordResetEmail(link string) string {
	return fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>A password reset was requested for your account. The link is valid for one hour:</p>
		<p><a href="%s">Reset my password</a></p>
		<p>If you did not request this, ignore this message.</p>`, link)
}

func renderDecisionEmail(approved bool, notes string) string {
	if approved {
		return `
		<h2>Your professional profile has been verified</h2>
		<p>Congratulations, your business profile is now visible on the marketplace.</p>`
	}
	body := `
		<h2>Your professional profile was not approved</h2>
		<p>Our review team could not verify your submitted documents.</p>`
	if notes != "" {
		body += fmt.Sprintf("<p>Reviewer notes: %s</p>", notes)
	}
	body += `<p>You can upload new documents and request another review at any time.</p>`
	return body
}
