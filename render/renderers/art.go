package renderers

import (
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/render"
)

// bodyLOD selects an enemy body variant by apparent size
type bodyLOD uint8

const (
	lodFar bodyLOD = iota
	lodMid
	lodNear
)

// lodFor maps perspective factor × enemy scale to a body variant
func lodFor(f, scale float64) bodyLOD {
	size := f * scale
	switch {
	case size >= constants.LODNear:
		return lodNear
	case size >= constants.LODMid:
		return lodMid
	default:
		return lodFar
	}
}

// enemyArt is the per-kind body dispatch entry
type enemyArt struct {
	near  []string
	mid   string
	far   rune
	color render.RGB
}

var enemyArtTable = map[components.EnemyKind]enemyArt{
	components.EnemySmall: {
		near:  []string{" o ", "/|\\", "/ \\"},
		mid:   "<o>",
		far:   'o',
		color: render.RgbEnemySmall,
	},
	components.EnemyNormal: {
		near:  []string{"(@)", "/#\\", "| |"},
		mid:   "(@)",
		far:   '@',
		color: render.RgbEnemyNormal,
	},
	components.EnemyBig: {
		near:  []string{"/MMM\\", "|O_O|", "\\WWW/"},
		mid:   "[M]",
		far:   'M',
		color: render.RgbEnemyBig,
	},
	components.EnemyDodger: {
		near:  []string{" ~ ", "<#>", "/ \\"},
		mid:   "<~>",
		far:   '~',
		color: render.RgbEnemyDodger,
	},
	components.EnemyRusher: {
		near:  []string{">>>", "=@=", ">>>"},
		mid:   ">@>",
		far:   '>',
		color: render.RgbEnemyRusher,
	},
	components.EnemyShielded: {
		near:  []string{"[=]", "|#|", "[_]"},
		mid:   "[#]",
		far:   '#',
		color: render.RgbEnemyShielded,
	},
}

// bodyLines returns the rows of an enemy body at a given LOD
func bodyLines(kind components.EnemyKind, lod bodyLOD) []string {
	art := enemyArtTable[kind]
	switch lod {
	case lodNear:
		return art.near
	case lodMid:
		return []string{art.mid}
	default:
		return []string{string(art.far)}
	}
}

// bodyWidth returns the widest row in runes
func bodyWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return w
}
