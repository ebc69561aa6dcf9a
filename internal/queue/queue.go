package queue

import (
	"encoding/json"

	"github.com/urielfortunato123-del/verdade-legal-br/db"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// VerificationQueue pushes completed analyses onto the Redis archive queue,
// where the archiver worker persists them. The API write path never blocks
// on the database.
type VerificationQueue struct{}

func NewVerificationQueue() *VerificationQueue {
	return &VerificationQueue{}
}

func (q *VerificationQueue) Enqueue(v model.Verification) error {
	payload, err := json.Marshal(model.ArchiveTask{Verification: v})
	if err != nil {
		return err
	}
	return db.PushToQueue(db.ArchiveQueueKey, string(payload))
}
