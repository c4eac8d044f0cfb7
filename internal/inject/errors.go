package inject

import "errors"

var ErrNoDataset = errors.New("no dataset provided")
