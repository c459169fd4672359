/*
Package hexagram holds the static tables and the pure derivation rules of
the six-line hexagram.

Every function here is a pure function of a domain.Pattern (plus the palace
or day stem where the rule needs one). The lookup tables are generated once
at package initialization from the rules themselves and verified for
consistency; they are never modified afterwards, so they can be shared
across goroutines without synchronization.

# Rules

  - World/response placement: DeriveWorld (reference algorithm) and World (table).
  - Palace and soul: PalaceOf, SoulOf.
  - Type label: KindOf (wandering/returning, six-clash, six-harmony).
  - Six relatives: Relatives, from the five-element generation/control rule.
  - Six spirits: Spirits, keyed by the day stem.
  - Hidden and transformed hexagrams: Hidden, Transform.
*/
package hexagram
