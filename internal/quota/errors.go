package quota

import "errors"

var (
	// ErrFailedToCountViews indicates the daily view count could not be read.
	ErrFailedToCountViews = errors.New("failed to count contact views")
	// ErrFailedToRecordView indicates the view event could not be inserted.
	ErrFailedToRecordView = errors.New("failed to record contact view")
)
