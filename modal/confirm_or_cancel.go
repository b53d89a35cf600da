// Package modal holds dialog controllers for the exploration editor.
package modal

// DismissCancel is the reason passed to Dismiss when the user cancels.
const DismissCancel = "cancel"

// Instance is the open dialog as seen by its controller.
type Instance[T any] interface {
	// Close resolves the dialog with a result.
	Close(result T)
	// Dismiss rejects the dialog with a reason.
	Dismiss(reason string)
}

// ConfirmOrCancel is the base behaviour shared by confirm/cancel dialogs.
type ConfirmOrCancel[T any] struct {
	instance Instance[T]
}

// Confirm closes the dialog with result.
func (c ConfirmOrCancel[T]) Confirm(result T) {
	c.instance.Close(result)
}

// Cancel dismisses the dialog.
func (c ConfirmOrCancel[T]) Cancel() {
	c.instance.Dismiss(DismissCancel)
}
