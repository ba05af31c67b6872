package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	action, err := ActionFromString("stay")
	a.NoError(err)
	a.Equal(ActionStay, action)

	action, err = ActionFromString("RAISE")
	a.NoError(err)
	a.Equal(ActionRaise, action)

	action, err = ActionFromString("Fold")
	a.NoError(err)
	a.Equal(ActionFold, action)

	_, err = ActionFromString("check")
	a.EqualError(err, "check is not a valid action")

	_, err = ActionFromString("")
	a.EqualError(err, " is not a valid action")
}
