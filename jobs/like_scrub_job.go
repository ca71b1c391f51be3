// File: /jobs/like_scrub_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"tripjournal-api/models"
)

// LikeScrubJob periodically removes like rows whose story has been
// deleted. Story deletion does not touch the likes of other users, so
// the rows linger as weak references until this sweep (or the lazy
// cleanup in the engagement service) drops them.
type LikeScrubJob struct {
	db     *gorm.DB
	ticker *time.Ticker
	done   chan bool
}

// NewLikeScrubJob creates a new like scrub job
func NewLikeScrubJob(db *gorm.DB, interval time.Duration) *LikeScrubJob {
	return &LikeScrubJob{
		db:     db,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the scrub job
func (j *LikeScrubJob) Start() {
	fmt.Println("Like scrub job started")

	go func() {
		// Run immediately on start
		j.scrub()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.scrub()
			case <-j.done:
				fmt.Println("Like scrub job stopped")
				return
			}
		}
	}()
}

// Stop stops the scrub job
func (j *LikeScrubJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// scrub deletes dangling like rows
func (j *LikeScrubJob) scrub() {
	res := j.db.
		Where("story_id NOT IN (?)", j.db.Model(&models.Story{}).Select("id")).
		Delete(&models.StoryLike{})
	if res.Error != nil {
		fmt.Printf("Error during like scrub: %v\n", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		fmt.Printf("Like scrub removed %d dangling likes\n", res.RowsAffected)
	}
}
