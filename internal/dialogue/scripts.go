package dialogue

import (
	"fmt"

	"github.com/demobank/fraudcall/internal/model"
)

// Spoken scripts for the DemoBank fraud-alert flow. The agent never
// requests or echoes full card numbers, passwords, or PINs; the only
// card detail read back is the masked ending already on the record.
const (
	greetingScript = "Hello, this is the fraud monitoring team from DemoBank. " +
		"This is a demo call about a suspicious card transaction. " +
		"To begin, may I know your first name?"

	noCaseScript = "I'm not finding any active fraud alerts under that name in this demo system. " +
		"I'll end the call here. Thank you for your time."

	defaultSecurityQuestion = "For security, please confirm: what is your favorite color?"

	identityVerifiedScript = "Perfect, thank you. Your identity is verified."

	verificationFailedScript = "I'm sorry, but the details do not match our records. " +
		"For your security, I won't be able to discuss this transaction further. " +
		"Please contact DemoBank customer support using the number on the back of your card. " +
		"This demo call will now end."

	repromptScript = "I'm sorry, I didn't quite catch that. " +
		"Please clearly answer yes if you made this transaction, or no if you did not."

	confirmedSafeScript = "Thank you. I have marked this transaction as safe in our system. " +
		"Your card remains active. " +
		"If you notice anything unusual in future, please contact DemoBank immediately. " +
		"This concludes our demo call. Have a great day!"

	confirmedFraudScript = "Thank you for letting us know. " +
		"I have marked this transaction as fraudulent in our system. " +
		"In this demo, your card is blocked and a dispute has been initiated. " +
		"A DemoBank representative will follow up with you shortly. " +
		"Thank you for your time and stay safe."
)

// Outcome notes written alongside terminal status changes.
const (
	noteVerificationFailed = "Verification failed. Customer could not correctly answer security question in demo."
	noteConfirmedSafe      = "Customer confirmed the transaction as legitimate in demo."
	noteConfirmedFraud     = "Customer denied making the transaction. Card blocked and dispute initiated in demo flow."
)

// securityQuestionScript greets the caller by first name and poses the
// case's security question.
func securityQuestionScript(c *model.FraudCase) string {
	question := c.SecurityQuestion
	if question == "" {
		question = defaultSecurityQuestion
	}
	return fmt.Sprintf("Hi %s. Before we continue, I need to verify your identity. %s", c.UserName, question)
}

// transactionScript reads back the flagged transaction and asks for an
// explicit yes/no confirmation.
func transactionScript(c *model.FraudCase) string {
	return fmt.Sprintf(
		"Thank you for confirming your identity. "+
			"We detected a suspicious transaction on your DemoBank card ending with %s. "+
			"The transaction is for %.2f %s at %s in %s, on %s. "+
			"Did you make this transaction? Please answer yes or no.",
		c.CardEnding,
		c.TransactionAmount,
		c.TransactionCurrency,
		c.TransactionName,
		c.TransactionLocation,
		c.TransactionTime,
	)
}
