package email

import "fmt"

// BuildWelcomeBody builds the HTML body for the newsletter welcome email
func BuildWelcomeBody(name string) string {
	greeting := "Hallo"
	if name != "" {
		greeting = fmt.Sprintf("Hallo %s", name)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #c9a87c 0%%, #8d6e4c 100%%); padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Willkommen bei Casa Petrada</h1>
	</div>

	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<p style="margin-top: 0;">%s,</p>
		<p>vielen Dank für Ihre Anmeldung zu unserem Newsletter. Als Dankeschön erhalten Sie 15%% Rabatt auf Ihre erste Bestellung.</p>

		<div style="background: #f8f5f0; padding: 15px; border-radius: 5px; margin: 20px 0; text-align: center;">
			<p style="margin: 0; font-size: 14px; color: #666;">Ihr Gutscheincode</p>
			<p style="margin: 5px 0 0 0; font-size: 22px; font-weight: bold; font-family: monospace; letter-spacing: 2px;">WELCOME15</p>
		</div>

		<p>Geben Sie den Code einfach im Warenkorb ein.</p>

		<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

		<p style="font-size: 12px; color: #999; margin-bottom: 0;">
			Diese E-Mail wurde automatisch versendet. Bei Fragen wenden Sie sich bitte an unseren Support.
		</p>
	</div>
</body>
</html>`, greeting)
}

// BuildContactAckBody builds the HTML body for the contact acknowledgement email
func BuildContactAckBody(subject string) string {
	subjectLine := ""
	if subject != "" {
		subjectLine = fmt.Sprintf(`<div style="background: #f8f5f0; padding: 15px; border-radius: 5px; margin: 20px 0;">
			<p style="margin: 0; font-size: 14px; color: #666;">Ihr Betreff</p>
			<p style="margin: 5px 0 0 0; font-weight: bold;">%s</p>
		</div>`, subject)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #c9a87c 0%%, #8d6e4c 100%%); padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Nachricht erhalten</h1>
	</div>

	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<p style="margin-top: 0;">vielen Dank für Ihre Nachricht. Wir melden uns in der Regel innerhalb von 24 Stunden bei Ihnen.</p>

		%s

		<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

		<p style="font-size: 12px; color: #999; margin-bottom: 0;">
			Diese E-Mail wurde automatisch versendet. Bitte antworten Sie nicht direkt auf diese Nachricht.
		</p>
	</div>
</body>
</html>`, subjectLine)
}
