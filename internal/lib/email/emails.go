package email

import "strconv"

// SendAccountRegisteredEmail tells the administrator that a new account
// was registered.
func (c *Client) SendAccountRegisteredEmail(to string, userID int, username, accountName string) error {
	data := map[string]string{
		"UserID":      strconv.Itoa(userID),
		"Username":    username,
		"AccountName": accountName,
	}

	return c.SendEmail(
		to,
		"New Ladder Stats registration: "+accountName,
		TemplateAccountRegistered,
		data,
	)
}
