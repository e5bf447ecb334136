package cli

import "text/template"

const usageText = `
accountbox - local multi-account store

Usage:
  accountbox [OPTIONS] COMMAND

Options:
  --db PATH          Path to the account database (default: accountbox.db)
  --session-db PATH  Path to the session database (default: accountbox-session.db)
  --version          Show version information

Commands:
  register             Create a new account
  login [username]     Log in with a password check
  switch <username>    Switch to another stored account (no password)
  logout               Log out of the active account
  status [username]    Show the active session
  accounts             List the other stored accounts
  profile              Show the active account profile
  edit                 Edit nickname and/or password of the active account
  avatar <ref>         Set the avatar reference of the active account
  signature [text]     Show or set the install signature
  authorize            Print quick-login grant info for an external app

Examples:
  accountbox register
  accountbox login
  accountbox switch bob
  accountbox avatar resource://avatars/3
  accountbox avatar https://example.com/me.png
  accountbox signature Hello from my device
`

var templateFuncs = template.FuncMap{
	"describeAvatar": describeAvatar,
}

var statusTemplate = template.Must(template.New("status").Funcs(templateFuncs).Parse(`
=== Session Status ===

{{- if . }}

Status:     Active
Username:   {{.Username}}
Nickname:   {{.Nickname}}
Avatar:     {{describeAvatar .AvatarRef}}
{{- if not .LastLoginAt.IsZero }}
Last login: {{.LastLoginAt.Format "2006-01-02 15:04:05"}}
{{- end}}
{{ else }}

Status: Logged out

Run 'accountbox login' to activate an account.
{{ end }}
`))

var accountsListTemplate = template.Must(template.New("accounts").Funcs(templateFuncs).Parse(`
=== Other Accounts ===

{{- if eq (len .) 0 }}

No other accounts stored.

Use 'accountbox register' to add one.
{{ else }}

Found {{len .}} account(s):

{{- range . }}
- {{ .Nickname }}
   Username: {{ .Username }}
   Avatar:   {{ describeAvatar .AvatarRef }}

{{- end }}
Use 'accountbox switch <username>' to activate one.
{{ end }}
`))

var profileTemplate = template.Must(template.New("profile").Funcs(templateFuncs).Parse(`
=== Profile ===

Nickname:  {{.Nickname}}
Username:  {{.Username}}
Avatar:    {{describeAvatar .AvatarRef}}
Signature: {{.Signature}}
`))
