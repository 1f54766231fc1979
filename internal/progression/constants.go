package progression

// Log Messages
const (
	LogMsgQuoteRead       = "Quote read"
	LogMsgBoonDropped     = "Boon dropped"
	LogMsgLevelUp         = "Level up"
	LogMsgBadgesUnlocked  = "Badges unlocked"
	LogMsgDestinyChanged  = "Destiny changed"
	LogMsgStateHydrated   = "Player state hydrated"
	LogMsgStateRepaired   = "Player state repaired during hydration"
	LogMsgSnapshotFailed  = "Failed to persist snapshot"
	LogMsgBackupImported  = "Backup imported"
	LogMsgBackupRejected  = "Backup rejected"
	LogMsgScriptureAdded  = "Scripture registered"
	LogMsgScriptureRemove = "Scripture deleted"
	LogMsgStateReset      = "Player state reset"
)
