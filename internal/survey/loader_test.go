package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `# Survey Data

| Timestamp | Interviewer Name | Date of Interview | Time of Interview | Shop Type | Location / Area | Estimated Owner Age | Estimated Customers Per Day | Busiest Time of Day | Payment Methods Accepted | When did they start using mobile payments? | Concerns mentioned before starting mobile payments | Current problems with mobile payments (if any) | Has a customer ever asked for help sending or receiving money? | If yes, what exactly did the customer ask? | Has a customer ever asked about dollars or foreign money? | What did the shopkeeper do the last time this happened? | Where do they send customers for currency exchange today? | Why do they send customers there instead of handling it themselves? | Did they mention a real fraud story? | If yes, describe what happened | Approximate money lost (if mentioned) | What do they actively avoid now because of fraud? | Last new service or item they added | Who influenced that decision? | What makes a new service feel safe to them? | Exact phrases they used about money, trust, or fraud | Anything surprising or strongly emotional? | Upload Audio Recording | Upload English Transcript | Photo of shop for Proof |
| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |
| 2025-08-01 10:02 | Ali | 2025-08-01 | 10:00 | General store | Saddar | 45 | 120 | Evening | Cash, EasyPaisa and JazzCash | 2 years ago | Fraud risk | Delayed confirmations | Yes | Send money to son | yes | Sent to money changer | money changer or bank | I do not know the rates | y | Fake payment screenshot | 5000 PKR | Large transfers | QR codes | Supplier | Government approval | "I only trust cash" | Very animated about fraud | rec1.mp3 | Shopkeeper: customers ask about dollars. | shop1.jpg |
| 2025-08-02 16:40 | Sara | 2025-08-02 | 16:30 | Pharmacy | Clifton |  | 80 | Morning |  |  |  |  | no |  | No |  |  |  | false |  |  |  |  |  |  |  |  |  |  |  |
`

func TestParseInterviewsFullRow(t *testing.T) {
	interviews := ParseInterviews([]byte(sampleTable))
	require.Len(t, interviews, 2)

	iv := interviews[0]
	assert.Equal(t, "1", iv.ID)
	assert.Equal(t, "Ali", iv.Interviewer)
	assert.Equal(t, "General store", iv.ShopType)
	assert.Equal(t, "Saddar", iv.Location)
	assert.Equal(t, 45, iv.OwnerAge)
	assert.Equal(t, "Evening", iv.BusiestTime)
	assert.Equal(t, []string{"Cash", "EasyPaisa", "JazzCash"}, iv.PaymentMethods)
	assert.True(t, iv.CustomerAskedForHelp)
	assert.Equal(t, "Send money to son", iv.HelpRequestDetails)
	assert.True(t, iv.DollarInquiry)
	assert.Equal(t, []string{"money changer", "bank"}, iv.CurrencyExchangeReferral)
	assert.Equal(t, "I do not know the rates", iv.WhyReferElsewhere)
	assert.True(t, iv.FraudStory)
	assert.Equal(t, "Fake payment screenshot", iv.FraudDetails)
	assert.Equal(t, "5000 PKR", iv.MoneyLost)
	assert.Equal(t, "/audio/rec1.mp3", iv.AudioFile)
	assert.Equal(t, "/photos/shop1.jpg", iv.PhotoFile)
	assert.Equal(t, "Shopkeeper: customers ask about dollars.", iv.Transcript)
}

func TestParseInterviewsSparseRow(t *testing.T) {
	interviews := ParseInterviews([]byte(sampleTable))
	require.Len(t, interviews, 2)

	iv := interviews[1]
	assert.Equal(t, "2", iv.ID)
	assert.Equal(t, 0, iv.OwnerAge, "non-numeric age falls back to zero")
	assert.Empty(t, iv.PaymentMethods)
	assert.False(t, iv.CustomerAskedForHelp)
	assert.False(t, iv.DollarInquiry)
	assert.False(t, iv.FraudStory)
	assert.Empty(t, iv.AudioFile)
	assert.Empty(t, iv.Transcript)
}

func TestParseInterviewsNoTable(t *testing.T) {
	assert.Empty(t, ParseInterviews([]byte("# Nothing here\n\nJust prose.\n")))
}

func TestParseYesNo(t *testing.T) {
	for _, v := range []string{"yes", "Yes", "Y", "TRUE", "1", " yes "} {
		assert.True(t, parseYesNo(v), v)
	}
	for _, v := range []string{"", "no", "n", "0", "maybe", "yess"} {
		assert.False(t, parseYesNo(v), v)
	}
}

func TestParseList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Cash", []string{"Cash"}},
		{"Cash, EasyPaisa; JazzCash", []string{"Cash", "EasyPaisa", "JazzCash"}},
		{"bank or friend", []string{"bank", "friend"}},
		{"Cash and Card", []string{"Cash", "Card"}},
		// "or"/"and" split only on word boundaries.
		{"Cards and more", []string{"Cards", "more"}},
		{"Doordash", []string{"Doordash"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseList(tc.in), tc.in)
	}
}

func TestPublicFilePath(t *testing.T) {
	assert.Equal(t, "", publicFilePath("/audio/", "  "))
	assert.Equal(t, "/audio/rec.mp3", publicFilePath("/audio/", "rec.mp3"))
	assert.Equal(t, "/uploads/rec.mp3", publicFilePath("/audio/", "/uploads/rec.mp3"))
}

func TestLoadInterviews(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	interviews, err := LoadInterviews(path)
	require.NoError(t, err)
	assert.Len(t, interviews, 2)

	_, err = LoadInterviews(filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}

func TestInterviewByID(t *testing.T) {
	interviews := ParseInterviews([]byte(sampleTable))
	iv, ok := InterviewByID(interviews, "2")
	require.True(t, ok)
	assert.Equal(t, "Pharmacy", iv.ShopType)

	_, ok = InterviewByID(interviews, "99")
	assert.False(t, ok)
}
