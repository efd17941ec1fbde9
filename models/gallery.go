package models

import (
	"time"
)

// Gallery is a named label under a top-level category (e.g. category
// "Wedding", label "Muslim"). Albums group under a label.
type Gallery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Category  string    `json:"category" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Albums []Album       `json:"albums,omitempty" gorm:"foreignKey:LabelID"`
	Media  []GalleryMedia `json:"media,omitempty" gorm:"foreignKey:GalleryID"`
}

func (Gallery) TableName() string {
	return "gallery"
}

type Album struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	LabelID   uint      `json:"label_id" gorm:"not null;index"`
	CoverKey  *string   `json:"cover_key" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Label Gallery        `json:"label,omitempty" gorm:"foreignKey:LabelID"`
	Media []GalleryMedia `json:"media,omitempty" gorm:"foreignKey:AlbumID"`
}

func (Album) TableName() string {
	return "albums"
}

// GalleryMedia holds an object-storage key, never a URL. The s3_url
// column name is historical; it stores the bucket key.
type GalleryMedia struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GalleryID uint      `json:"gallery_id" gorm:"not null;index"`
	AlbumID   *uint     `json:"album_id" gorm:"index"`
	Title     *string   `json:"title" gorm:"size:255"`
	S3Key     string    `json:"s3_url" gorm:"column:s3_url;size:500;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Gallery Gallery `json:"gallery,omitempty" gorm:"foreignKey:GalleryID"`
	Album   *Album  `json:"album,omitempty" gorm:"foreignKey:AlbumID"`
}

func (GalleryMedia) TableName() string {
	return "gallery_media"
}
