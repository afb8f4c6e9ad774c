package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"pathwise/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: PathWise <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #6c5ce7; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2d3436; line-height: 1.6; }
			.content h2 { color: #2d3436; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6c5ce7; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PATHWISE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 PathWise. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta de PathWise está lista. Elige un curso, configura tu técnica de estudio y genera tu primer plan.</p>
		<div class="info-box">Consejo: sesiones cortas y frecuentes mantienen tu racha viva.</div>
	`, name)
	SendEmail([]string{email}, "Bienvenido a PathWise", getEmailTemplate("¡Bienvenido!", body))
}

// 2. Daily session reminder
func SendSessionReminderEmail(email, name, eventTitle, eventTime string) {
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tienes una sesión de estudio programada para hoy:</p>
		<div class="info-box"><strong>%s</strong><br>Hora: %s</div>
		<p>Completa la sesión para mantener tu racha.</p>
	`, name, eventTitle, eventTime)
	SendEmail([]string{email}, "Recordatorio de sesión de estudio", getEmailTemplate("Tu sesión de hoy", body))
}
