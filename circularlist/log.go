package circularlist

import "github.com/Invicton-Labs/go-lists/log"

var plog = log.ComponentLogger("circularlist")
