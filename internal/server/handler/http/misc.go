package http

import (
	"net/http"
)

// Protected handles GET /protected, a trivial endpoint behind the
// token gate.
func Protected(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "This is a protected route"})
}

// Docs handles GET /docs with a static index of the API surface. The
// path is on the auth allow-list.
func Docs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"auth": []string{
			"POST /register", "POST /login", "DELETE /user", "GET /users",
		},
		"projects": []string{
			"POST /project", "GET /projects", "GET /project/{name}",
			"PUT /project/{name}", "DELETE /project/{name}",
		},
		"tasks": []string{
			"POST /task", "GET /tasks", "GET /task/{name}",
			"PUT /task/{name}", "DELETE /task/{name}",
		},
		"comments": []string{
			"POST /task/{name}/comments", "GET /task/{name}/comments",
			"PUT /task/{name}/comments/{id}", "DELETE /task/{name}/comments/{id}",
		},
		"categories": []string{
			"POST /category", "GET /category",
			"PUT /category/{name}", "DELETE /category/{name}",
		},
		"notes": []string{
			"POST /note", "GET /notes",
			"PUT /note/{name}", "DELETE /note/{name}",
		},
		"files": []string{
			"POST /upload/", "GET /files/", "GET /download/{filename}",
			"DELETE /delete/{filename}", "PUT /update/{filename}/",
		},
	})
}
