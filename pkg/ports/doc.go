/*
Package ports defines the driven ports (interfaces) of the Najia compiler.

These interfaces decouple the derivation core from the services it consults,
so the compiler runs the same against a real lunar calendar, a fixed test
calendar, or commentary files kept in YAML or JSON.

# Key Interfaces

  - Calendar: Resolves a solar instant to its month branch and day pillar.
  - Commentary: Looks up the traditional text attached to a hexagram name.
*/
package ports
