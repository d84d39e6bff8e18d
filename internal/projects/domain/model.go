package domain

// Project is a portfolio entry as stored in the projects document.
// JSON field names match the document the frontend consumes, including
// the French "categorie" and "vue" keys.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	TitleSimple  string   `json:"titleSimple"`
	Description  string   `json:"description"`
	Description2 string   `json:"description2"`
	Description3 string   `json:"description3"`
	Details      string   `json:"details"`
	Technologies []string `json:"technologies"`
	Date         string   `json:"date"`
	Categories   []string `json:"categorie"`
	Image        string   `json:"image"`
	ImageSimple  string   `json:"imageSimple"`
	Images       []string `json:"images"`
	Type         string   `json:"type"`
	Vue          string   `json:"vue"`
}

// ProjectPatch carries a partial update. Nil fields are left untouched
// on the stored record.
type ProjectPatch struct {
	Title        *string   `json:"title"`
	TitleSimple  *string   `json:"titleSimple"`
	Description  *string   `json:"description"`
	Description2 *string   `json:"description2"`
	Description3 *string   `json:"description3"`
	Details      *string   `json:"details"`
	Technologies *[]string `json:"technologies"`
	Date         *string   `json:"date"`
	Categories   *[]string `json:"categorie"`
	Image        *string   `json:"image"`
	ImageSimple  *string   `json:"imageSimple"`
	Images       *[]string `json:"images"`
	Type         *string   `json:"type"`
	Vue          *string   `json:"vue"`
}

// Apply merges the patch into p, field by field.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.TitleSimple != nil {
		p.TitleSimple = *patch.TitleSimple
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Description2 != nil {
		p.Description2 = *patch.Description2
	}
	if patch.Description3 != nil {
		p.Description3 = *patch.Description3
	}
	if patch.Details != nil {
		p.Details = *patch.Details
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Categories != nil {
		p.Categories = *patch.Categories
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.ImageSimple != nil {
		p.ImageSimple = *patch.ImageSimple
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Vue != nil {
		p.Vue = *patch.Vue
	}
}
