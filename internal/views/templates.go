package views

import (
	"text/template"
)

var templates = map[string]*template.Template{
	"search": template.Must(template.New("search").Parse(
		`{{if .Description}}{{.Description}}
{{end}}{{range .Results}}- {{.Title}} ({{.ReleaseYear}}) {{.ReviewCount}} reviews
{{end}}`)),

	"movie": template.Must(template.New("movie").Parse(
		`{{with .Details}}{{.Movie.Title}} ({{.Movie.ReleaseYear}})
Rank #{{.Rank}} | {{.Movie.DurationHours}}h {{.Movie.DurationMinutes}}m | {{.Movie.ReviewCount}} reviews
{{.Movie.Description}}

Reviews
{{range .Reviews}}- {{.User.FirstName}} {{.User.LastName}} rated {{.Rating}}/5{{if .Edited}} (edited){{end}}: {{.Comment}}
{{else}}No reviews yet
{{end}}{{else}}Loading...
{{end}}`)),
}
