/*
Package lvimg is a library for authoring the LVGL indexed color image arrays
used by the bongo cat keyboard widget.
*/
package lvimg

import (
	"io/ioutil"
	"log"
)

type LVImg struct {
	logger *log.Logger
}

func New(logger *log.Logger) *LVImg {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &LVImg{
		logger: logger,
	}
}
