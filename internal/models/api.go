package models

// CatalogResponse is the JSON payload returned by the catalog listing endpoint.
type CatalogResponse struct {
	Resposta struct {
		Status string `json:"status"`
		Items  struct {
			Item []CatalogItem `json:"item"`
		} `json:"items"`
	} `json:"resposta"`
}

// CatalogItem is a single episode in a catalog listing page.
type CatalogItem struct {
	ID       int    `json:"id"`
	Titol    string `json:"titol"`
	Capitol  int    `json:"capitol"`
	Programa string `json:"programa"`
}

// MediaResponse is the JSON payload returned by the per-episode media endpoint.
type MediaResponse struct {
	Media struct {
		Format string     `json:"format"`
		URL    []MediaURL `json:"url"`
	} `json:"media"`
	Subtitols []Subtitol `json:"subtitols"`
}

// MediaURL is a media candidate inside a MediaResponse.
type MediaURL struct {
	Label  string `json:"label"`
	File   string `json:"file"`
	Active bool   `json:"active"`
}

// Subtitol is a subtitle track inside a MediaResponse.
type Subtitol struct {
	Text   string `json:"text"`
	ISO    string `json:"iso"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

// APIError is the error body the provider sends instead of a regular payload.
type APIError struct {
	Code    int    `json:"codi"`
	Message string `json:"missatge"`
}
