// internal/event/types.go
package event

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг выпущен на путь
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до конца пути
	WaveCompleted   EventType = "WaveCompleted"   // Все враги волны учтены
	WaveStarted     EventType = "WaveStarted"     // Спавнер начал новую волну
	SpawnFailed     EventType = "SpawnFailed"     // Спавн пропущен, Data — error
)
