package multiexp

import "errors"

var ErrTooManyGoRoutines = errors.New("the number of go routines must be less than 1024")
