package mailer

import (
	"html/template"
	"strings"
)

type passwordResetTemplateData struct {
	Name      string
	AppName   string
	ResetLink string
}

type passwordChangedTemplateData struct {
	Name      string
	AppName   string
	ClientURL string
}

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<p>Dear {{.Name}},</p>
<p>We received a request to reset the password for your {{.AppName}} account.</p>
<p>To choose a new password, follow this link:</p>
<p><a href="{{.ResetLink}}">{{.ResetLink}}</a></p>
<p>If you did not request a password reset, you can ignore this message and your password will remain unchanged.</p>
<p>The {{.AppName}} Team</p>`))

var passwordChangedTemplate = template.Must(template.New("password_changed").Parse(`<p>Dear {{.Name}},</p>
<p>The password for your {{.AppName}} account was just changed.</p>
<p>If you made this change, no further action is needed. You can sign in with your new password at <a href="{{.ClientURL}}">{{.ClientURL}}</a>.</p>
<p>If you did not change your password, please contact us immediately.</p>
<p>The {{.AppName}} Team</p>`))

func renderPasswordResetBody(data passwordResetTemplateData) (string, error) {
	var b strings.Builder
	if err := passwordResetTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderPasswordChangedBody(data passwordChangedTemplateData) (string, error) {
	var b strings.Builder
	if err := passwordChangedTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
