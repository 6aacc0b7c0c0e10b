package item

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgLookupItemFailed       = "failed to look up item '%s': %w"
	ErrMsgUpdateItemFailed       = "failed to update item '%s': %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
	ErrMsgDeactivateItemsFailed  = "failed to deactivate retired items: %w"
)

// Validation error messages
const (
	ErrMsgCatalogNil = "catalog is nil"
)

// ==================== Log Messages ====================

// Sync operation log messages
const (
	LogMsgCatalogUnchanged = "Item catalog unchanged, skipping sync"
	LogMsgSyncCompleted    = "Item catalog sync completed"
	LogMsgUpdatedItem      = "Updated item"
	LogMsgInsertedItem     = "Inserted item"
	LogMsgRetiredItems     = "Retired items no longer in catalog"
)
