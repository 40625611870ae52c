package component

// WavePhase — фаза спавнера
type WavePhase int

const (
	SpawningPhase WavePhase = iota // Ещё не все враги волны выпущены
	WaitingPhase                   // Все выпущены, ждём их гибели или выхода
)

func (p WavePhase) String() string {
	if p == SpawningPhase {
		return "spawning"
	}
	return "waiting"
}

// WaveState — изменяемое состояние текущей волны спавнера
type WaveState struct {
	SpawnTimer       float64 // Секунд до следующей попытки спавна
	EnemiesSpawned   int     // Выпущено в этой волне
	EnemiesRemaining int     // Ещё не убиты и не дошли до конца
}
