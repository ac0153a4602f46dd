package store

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/models"
	"github.com/google/uuid"
)

// photoNamespace scopes the name-based ids given to legacy photos.
var photoNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("kfitness/progress-photo"))

// BackfillPhotoID derives the id of a photo stored without one from its
// owner, its timestamp and its position, so repeated backfills agree.
func BackfillPhotoID(userID int, date time.Time, index int) string {
	name := fmt.Sprintf("%d|%s|%d", userID, date.UTC().Format(time.RFC3339Nano), index)
	return uuid.NewSHA1(photoNamespace, []byte(name)).String()
}

// migrateUsers brings records written by older versions up to date, in
// place, and reports whether anything changed:
//   - a missing progressPhotos list becomes an empty one;
//   - a photo without id gets BackfillPhotoID;
//   - a record with a non-positive id gets the next free id.
func migrateUsers(users []models.User) bool {
	changed := false

	for i := range users {
		u := &users[i]

		if u.ID <= 0 {
			u.ID = NextID(users)
			changed = true
		}

		if u.ProgressPhotos == nil {
			u.ProgressPhotos = []models.ProgressPhoto{}
			changed = true
		}

		for j := range u.ProgressPhotos {
			p := &u.ProgressPhotos[j]
			if p.ID == "" {
				p.ID = BackfillPhotoID(u.ID, p.Date, j)
				changed = true
			}
		}
	}

	return changed
}
