package directory

import "errors"

var (
	ErrFailedToListAgencies = errors.New("failed to list agencies")
	ErrFailedToListContacts = errors.New("failed to list contacts")
	ErrFailedToListStates   = errors.New("failed to list states")
	ErrFailedToExport       = errors.New("failed to export records")
)
