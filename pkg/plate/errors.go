package plate

import "github.com/ansel1/merry"

// Precondition failures shared by the statistic and math engines.
var ErrNilArgument = merry.New("null argument")
var ErrInvalidIndices = merry.New("invalid indices")
var ErrDimensionMismatch = merry.New("dimension mismatch")

// Structural failures of container mutation.
var ErrInvalidPosition = merry.New("invalid well position")
var ErrInvalidDimensions = merry.New("invalid plate dimensions")
var ErrOutOfBounds = merry.New("well is outside of plate bounds")
var ErrDuplicateWell = merry.New("well already present")
var ErrWellNotFound = merry.New("well not found")
var ErrDuplicatePlate = merry.New("plate already present")
var ErrPlateNotFound = merry.New("plate not found")
var ErrDuplicateGroup = merry.New("group already present")
var ErrGroupNotFound = merry.New("group not found")
