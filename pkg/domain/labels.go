package domain

// Relative is the kinship role of a line relative to the palace element.
type Relative string

const (
	Sibling   Relative = "兄弟"
	Offspring Relative = "子孙"
	Parent    Relative = "父母"
	Wealth    Relative = "妻财"
	Official  Relative = "官鬼"
)

// Relatives lists the five roles.
var Relatives = [5]Relative{Parent, Sibling, Offspring, Wealth, Official}

// Spirit is one of the six guardians assigned to the lines.
type Spirit string

const (
	AzureDragon   Spirit = "青龙"
	VermilionBird Spirit = "朱雀"
	HookedChen    Spirit = "勾陈"
	SoaringSnake  Spirit = "螣蛇"
	WhiteTiger    Spirit = "白虎"
	BlackTortoise Spirit = "玄武"
)

// SpiritCycle is the fixed cyclic order of the six spirits.
var SpiritCycle = [6]Spirit{AzureDragon, VermilionBird, HookedChen, SoaringSnake, WhiteTiger, BlackTortoise}

// Strength is the seasonal state of a line under the month branch.
type Strength string

const (
	Prosperous Strength = "旺"
	Supported  Strength = "相"
	Resting    Strength = "休"
	Dead       Strength = "死"
	Imprisoned Strength = "囚"
)

// Soul is the structural state of a hexagram.
type Soul string

const (
	SoulNormal    Soul = ""
	SoulWandering Soul = "游魂"
	SoulReturning Soul = "归魂"
)

// Kind is the hexagram type label shown next to the palace.
type Kind string

const (
	KindNone      Kind = ""
	KindWandering Kind = "游魂"
	KindReturning Kind = "归魂"
	KindClash     Kind = "六冲"
	KindHarmony   Kind = "六合"
)
