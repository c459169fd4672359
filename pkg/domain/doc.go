/*
Package domain contains the core value types of the najia engine.

It defines the alphabets of the divination calendar (stems, branches, the five
elements), the hexagram vocabulary (patterns, trigrams, palaces, relatives,
spirits) and the immutable result returned by the compiler. This package is
kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - LineValue / Lines: the six cast values, bottom to top.
  - Pattern / Trigram: the yin/yang bit strings derived from the lines.
  - Palace: one of the eight trigram groups a hexagram belongs to.
  - StemBranch: a sexagenary pair such as 甲子.
  - Hexagram: the compiled result, with optional hidden, transformed and
    time sub-results.
*/
package domain
