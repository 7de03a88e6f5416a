package pty

import "errors"

var errZeroSize = errors.New("terminal reports zero size")
