package models

import "time"

// UnresolvedItem is a display name the resolver could not map to an image.
// Repeated misses of the same name and phase increment Hits.
type UnresolvedItem struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex:idx_unresolved_name_phase" json:"name"`
	Phase     string    `gorm:"column:phase;size:32;not null;default:'';uniqueIndex:idx_unresolved_name_phase" json:"phase,omitempty"`
	Kind      string    `gorm:"column:kind;size:32;not null" json:"kind"`
	Hits      int64     `gorm:"column:hits;not null;default:1" json:"hits"`
	FirstSeen time.Time `gorm:"column:first_seen" json:"first_seen"`
	LastSeen  time.Time `gorm:"column:last_seen" json:"last_seen"`
}

// TableName overrides the table name.
func (UnresolvedItem) TableName() string {
	return "unresolved_items"
}

// ImageRequest is the query of GET /items/image.
type ImageRequest struct {
	Name  string `query:"name" validate:"required,max=256"`
	Phase string `query:"phase" validate:"omitempty,phase"`
}

// MaterialRequest addresses a sticker, patch or status icon by material name.
type MaterialRequest struct {
	Material string `validate:"required,max=256,excludesall=\\?#"`
	Large    bool   `query:"large"`
}

// WeaponRequest addresses a weapon by definition and paint kit index.
type WeaponRequest struct {
	DefIndex   int `params:"defindex" validate:"gte=0"`
	PaintIndex int `params:"paintindex" validate:"gte=0"`
}

// ImageResponse is the body of a successful lookup.
type ImageResponse struct {
	URL            string `json:"url"`
	Kind           string `json:"kind"`
	CatalogVersion uint64 `json:"catalog_version"`
	Name           string `json:"name,omitempty"`
	Phase          string `json:"phase,omitempty"`
	Material       string `json:"material,omitempty"`
	DefIndex       *int   `json:"def_index,omitempty"`
	PaintIndex     *int   `json:"paint_index,omitempty"`
}
