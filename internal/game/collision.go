package game

// Collisions summarises what one resolution pass removed.
type Collisions struct {
	Kills int // bullet/enemy pairs
	Hits  int // player/enemy pairs
}

// resolver marks entities for removal and compacts the collections once
// every pair has been tested, so nothing is scored or tested twice.
type resolver struct {
	deadBullets []bool
	deadEnemies []bool
}

func (r *resolver) reset(bullets, enemies int) {
	r.deadBullets = resizeMarks(r.deadBullets, bullets)
	r.deadEnemies = resizeMarks(r.deadEnemies, enemies)
}

func resizeMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	for i := range marks {
		marks[i] = false
	}
	return marks
}

// resolve runs the bullet pass and then the player pass against the enemies
// that survived it. The player is never removed.
func (r *resolver) resolve(player *Player, enemies *[]Enemy, bullets *[]Bullet) Collisions {
	var out Collisions
	r.reset(len(*bullets), len(*enemies))

	for bi := range *bullets {
		br := (*bullets)[bi].Rect()
		for ei := range *enemies {
			if r.deadEnemies[ei] {
				continue
			}
			if br.Overlaps((*enemies)[ei].Rect()) {
				r.deadBullets[bi] = true
				r.deadEnemies[ei] = true
				out.Kills++
				break
			}
		}
	}

	pr := player.Rect()
	for ei := range *enemies {
		if r.deadEnemies[ei] {
			continue
		}
		if pr.Overlaps((*enemies)[ei].Rect()) {
			r.deadEnemies[ei] = true
			player.Lives--
			out.Hits++
		}
	}

	*bullets = compact(*bullets, r.deadBullets)
	*enemies = compact(*enemies, r.deadEnemies)
	return out
}

// compact keeps the unmarked elements in order. Marks past the end of items
// are ignored.
func compact[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if i < len(dead) && dead[i] {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
