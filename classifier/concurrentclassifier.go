// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import "github.com/mailkeel/mailkeel/domain"

type GoRoutineClassifier struct {
	domain.Classifier
}

// ClassifyAll fans the mails out over at most concurrency goroutines. A
// failed classification is retried once; the second result stands.
func (grc *GoRoutineClassifier) ClassifyAll(mails [][]byte, concurrency int) []*domain.TagResult {
	semaphore := make(chan bool, concurrency)
	results := make([]*domain.TagResult, len(mails))
	for i := 0; i < len(mails); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = grc.Classify(mails[index])
			if results[index].Error != nil {
				results[index] = grc.Classify(mails[index])
			}
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	return results
}
