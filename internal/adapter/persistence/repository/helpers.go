package repository

import (
	"errors"
	"sort"
	"strings"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sortHolds(hs []entities.HoldRecord) {
	sort.Slice(hs, func(i, j int) bool {
		if !hs[i].HeldAt.Equal(hs[j].HeldAt) {
			return hs[i].HeldAt.Before(hs[j].HeldAt)
		}
		return hs[i].ID < hs[j].ID
	})
}

// pageHolds sorts all and returns the page that follows cursor.
func pageHolds(all []entities.HoldRecord, cursor string, limit int) ([]entities.HoldRecord, string) {
	sortHolds(all)
	after, hasCursor := parseHoldCursor(cursor)

	page := make([]entities.HoldRecord, 0, limit)
	for i, h := range all {
		if hasCursor && !holdAfter(h, after) {
			continue
		}
		page = append(page, h)
		if len(page) == limit {
			if i == len(all)-1 {
				return page, ""
			}
			return page, holdCursor(h)
		}
	}
	return page, ""
}

// Hold cursors encode the (HeldAt, ID) position of the last hold returned, so a page walk
// survives holds being claimed between pages.
func holdCursor(h entities.HoldRecord) string {
	return h.HeldAt.UTC().Format(time.RFC3339Nano) + "|" + h.ID
}

func parseHoldCursor(cursor string) (entities.HoldRecord, bool) {
	at, id, ok := strings.Cut(cursor, "|")
	if !ok {
		return entities.HoldRecord{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return entities.HoldRecord{}, false
	}
	return entities.HoldRecord{ID: id, HeldAt: t}, true
}

func holdAfter(h, pos entities.HoldRecord) bool {
	if !h.HeldAt.Equal(pos.HeldAt) {
		return h.HeldAt.After(pos.HeldAt)
	}
	return h.ID > pos.ID
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// canceledAt reports which items of a TransactWriteItems call failed their condition.
func canceledAt(err error) (map[int]bool, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	failed := map[int]bool{}
	for i, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			failed[i] = true
		}
	}
	return failed, true
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
