package board

import (
	"publiflow-backend/internal/database/models"
)

// Column is one stage of the board with its ideas in store order
type Column struct {
	Status models.IdeaStatus `json:"status"`
	Title  string            `json:"title"`
	Ideas  []models.Idea     `json:"ideas"`
}

// Columns groups the displayed ideas by the scheme's stages.
// Ideas whose status is outside the scheme are left out.
func (b *Board) Columns() []Column {
	items := b.Items()
	stages := b.scheme.Stages()

	columns := make([]Column, len(stages))
	index := make(map[models.IdeaStatus]int, len(stages))
	for i, stage := range stages {
		columns[i] = Column{Status: stage, Title: stage.Label(), Ideas: []models.Idea{}}
		index[stage] = i
	}
	for _, idea := range items {
		if i, ok := index[idea.Status]; ok {
			columns[i].Ideas = append(columns[i].Ideas, idea)
		}
	}
	return columns
}
