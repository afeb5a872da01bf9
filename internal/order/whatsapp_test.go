package order

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EncodedForChatLink(t *testing.T) {
	encoded := Message("Paneer Butter Masala", "Monday", 250)

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Hi! I'd like to order *Paneer Butter Masala* for *Monday* - ₹250.00", decoded)

	// The raw message must already be safe to drop into a query string
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "'")
}

func TestChatURL(t *testing.T) {
	link := ChatURL("918102110031", "hello")
	assert.Equal(t, "https://wa.me/918102110031?text=hello", link)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹120.00", FormatPrice(120))
	assert.Equal(t, "₹99.50", FormatPrice(99.5))
}
