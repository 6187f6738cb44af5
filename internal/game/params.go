package game

import (
	"strconv"

	"starfall/internal/core"
)

// Parameters reports the session and its tuning for HUD display.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				textParam("state", "State", s.state.String()),
				intParam("score", "Score", s.score),
				intParam("lives", "Lives", s.player.Lives),
				intParam("enemies", "Enemies", len(s.enemies)),
				intParam("bullets", "Bullets", len(s.bullets)),
				intParam("tick", "Tick", int(s.tick)),
			},
		},
		{
			Name:    "Tuning",
			Summary: "speeds are in units per tick",
			Params: []core.Parameter{
				floatParam("player_speed", "Player speed", s.cfg.PlayerSpeed),
				floatParam("bullet_speed", "Bullet speed", s.cfg.BulletSpeed),
				floatParam("enemy_speed_min", "Enemy speed min", s.cfg.EnemySpeedMin),
				floatParam("enemy_speed_max", "Enemy speed max", s.cfg.EnemySpeedMax),
				intParam("kill_score", "Kill score", s.cfg.KillScore),
				{
					Key:   "freeze_on_terminal",
					Label: "Freeze on end",
					Type:  core.ParamTypeBool,
					Value: strconv.FormatBool(s.cfg.FreezeOnTerminal),
				},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', 4, 64)}
}

func textParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: v}
}
