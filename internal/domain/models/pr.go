package models

type (
	// NewPullRequest es la solicitud de creación de una Pull Request.
	NewPullRequest struct {
		Title               string
		Head                string
		Base                string
		Body                string
		MaintainerCanModify bool
	}

	// PullRequest representa una Pull Request existente en el proveedor.
	PullRequest struct {
		Number  int
		Title   string
		Head    string
		Base    string
		HTMLURL string
	}
)
