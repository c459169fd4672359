/*
Package najia compiles six-line casts into fully annotated Najia hexagrams.

A cast is six line values, bottom line first, drawn from {1,2,3,4,6,7,8,9}.
Odd values are yang, even values yin; 3, 4, 6 and 9 are moving lines. From the
cast the engine derives the hexagram name, its palace, the world and response
lines, the stem-branch (najia) assignment of each line, the six relatives and
six spirits, the hidden hexagram when roles are missing, the changed hexagram
when lines move, and, given a date or explicit month branch and day pillar,
the seasonal strength, month clash and void of every line.

# Concept

All static knowledge (names, palaces, world lines, najia) is generated once at
package initialization from the classical construction rules and checked for
consistency; a corrupt table panics at start-up. Everything after that is a
pure function of the cast and the calendar moment. Calendar conversion and
commentary lookup are ports, so the same derivation runs against the lunar-go
calendar or a fixed one in tests.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/najia"
		"github.com/aretw0/najia/pkg/domain"
	)

	func main() {
		eng := najia.New()

		h, err := eng.Compile(context.Background(), domain.Request{
			Lines: []int{2, 2, 1, 2, 4, 2},
			Date:  "2024-03-15 10:00",
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(h.Name, h.Palace, h.World.World)
	}

# Components

  - pkg/domain: Value types of casts and results.
  - pkg/hexagram: Static tables and the structural derivations.
  - pkg/timing: Month and day annotations.
  - pkg/batch: Concurrent compilation of many casts.
  - pkg/adapters: Calendar, commentary, HTTP and MCP adapters.
*/
package najia
