package main

import "runtime/debug"

// set with -ldflags "-X main.app_ver=..."
var app_ver string

func app_version() string {
	if v, ok := debug.ReadBuildInfo(); ok {
		if s := v.Main.Version; s != "" && s != "(devel)" {
			return s
		}
	}
	if app_ver != "" {
		return app_ver
	}
	return "#UNAVAILABLE"
}
