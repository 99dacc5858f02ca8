// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/classifier.go -package=mocks . Classifier,ConcurrentClassifier
package domain

type Priority string

const (
	PriorityLow    = Priority("low")
	PriorityNormal = Priority("normal")
	PriorityHigh   = Priority("high")
)

// TagResult is what the classification collaborator returns for one message.
// Error is carried in-band so concurrent batches keep their positions.
type TagResult struct {
	Tags       []string
	Priority   Priority
	Confidence float64
	Error      error
}

type Classifier interface {
	Classify(rawMail []byte) *TagResult
}

type ConcurrentClassifier interface {
	ClassifyAll(mails [][]byte, concurrency int) []*TagResult
}
