//go:build sdl

package main

import _ "github.com/trvswgnr/poke3d/internal/host/sdlhost"
