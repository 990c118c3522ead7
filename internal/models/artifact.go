package models

import "time"

type ArtifactRef struct {
	ID       string `mapstructure:"id" validate:"required"`
	RepoID   string `mapstructure:"repo_id" validate:"required,repo_id"`
	Filename string `mapstructure:"filename" validate:"required"`
}

type Artifact struct {
	Ref      ArtifactRef
	Path     string
	Size     int64
	SHA256   string
	Format   string
	LoadedAt time.Time
}
