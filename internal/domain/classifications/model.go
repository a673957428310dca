package classifications

import (
	"time"

	"animal-registry/internal/domain/classifier"
)

const StorageKey = "classifications"

// Record es un resultado del clasificador guardado por el usuario.
// Breed puede ser classifier.FallbackBreed.
type Record struct {
	ID              string                     `json:"id"`
	Breed           string                     `json:"breed"`
	Confidence      int                        `json:"confidence"`
	Characteristics classifier.Characteristics `json:"characteristics"`
	Alternatives    []classifier.Match         `json:"alternatives"`
	CreatedAt       time.Time                  `json:"createdAt"`
}
