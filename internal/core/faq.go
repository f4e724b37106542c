package core

import "strings"

// FAQ is one entry in the community help center.
type FAQ struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCategory is a filter bucket for the help center.
type FAQCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FAQCategories returns the filter buckets in display order. "all" disables
// category filtering.
func FAQCategories() []FAQCategory {
	return []FAQCategory{
		{ID: "all", Label: "All Questions"},
		{ID: "general", Label: "General"},
		{ID: "technical", Label: "Technical"},
		{ID: "account", Label: "Account"},
		{ID: "billing", Label: "Billing"},
		{ID: "support", Label: "Support"},
	}
}

// FilterFAQs returns the entries matching a case-insensitive substring search
// over question and answer, restricted to the given category ("" or "all"
// match every category).
func FilterFAQs(entries []FAQ, search, category string) []FAQ {
	needle := strings.ToLower(search)
	out := []FAQ{}
	for _, f := range entries {
		if category != "" && category != "all" && f.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(f.Question), needle) &&
			!strings.Contains(strings.ToLower(f.Answer), needle) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// AllFAQs returns the built-in help center catalogue.
func AllFAQs() []FAQ {
	return faqCatalogue
}

var faqCatalogue = []FAQ{
	{1, "general", "What is the purpose of this community platform?",
		"Our community platform is designed to connect users, share knowledge, and provide support for various topics related to our services and products."},
	{2, "account", "How do I create a new account?",
		"To create a new account, click on the 'Sign Up' button on the login page and fill in the required information including your name, email, and password."},
	{3, "technical", "What browsers are supported?",
		"We support all modern browsers including Chrome, Firefox, Safari, and Edge. We recommend using the latest version for the best experience."},
	{4, "billing", "How can I update my billing information?",
		"You can update your billing information by going to Settings > Billing and updating your payment method and billing address."},
	{5, "support", "How do I contact customer support?",
		"You can contact our customer support through the chat widget, email us at support@company.com, or call our support line during business hours."},
	{6, "general", "Is my data secure on this platform?",
		"Yes, we take data security very seriously. We use encryption, secure servers, and follow industry best practices to protect your information."},
	{7, "account", "How do I reset my password?",
		"Click on 'Forgot Password' on the login page, enter your email address, and follow the instructions sent to your email to reset your password."},
	{8, "technical", "Why am I experiencing slow loading times?",
		"Slow loading times can be caused by internet connection, browser cache, or high server traffic. Try clearing your browser cache or using a different network."},
	{9, "billing", "What payment methods do you accept?",
		"We accept major credit cards (Visa, MasterCard, American Express), PayPal, and bank transfers for premium subscriptions."},
	{10, "support", "What are your support hours?",
		"Our support team is available Monday through Friday, 9 AM to 6 PM EST. We also provide 24/7 chat support for urgent issues."},
	{11, "general", "Can I customize my profile?",
		"Yes, you can customize your profile by uploading a profile picture, adding a bio, and setting your preferences in the Profile section."},
	{12, "technical", "How do I enable notifications?",
		"To enable notifications, go to Settings > Notifications and choose which types of notifications you'd like to receive via email or push notifications."},
	{13, "account", "Can I delete my account?",
		"Yes, you can delete your account by going to Settings > Account > Delete Account. Please note that this action is irreversible."},
	{14, "billing", "How do I cancel my subscription?",
		"To cancel your subscription, go to Settings > Billing > Subscription and click 'Cancel Subscription'. Your access will continue until the end of your billing period."},
	{15, "support", "Do you offer phone support?",
		"Yes, we offer phone support for premium users. You can find the support phone number in your account dashboard under the Support section."},
	{16, "general", "What features are available in the free tier?",
		"The free tier includes basic community access, limited messaging, profile creation, and access to public forums and discussions."},
	{17, "technical", "How do I upload files?",
		"You can upload files by clicking the attachment icon in the message composer or dragging and dropping files directly into the chat or post area."},
	{18, "account", "How do I change my username?",
		"Username changes can be made once every 30 days. Go to Settings > Profile > Username to make changes. Some usernames may not be available."},
	{19, "billing", "Do you offer refunds?",
		"We offer refunds within 30 days of purchase for annual subscriptions and within 7 days for monthly subscriptions, subject to our refund policy."},
	{20, "support", "How do I report a bug?",
		"To report a bug, use the 'Report Bug' feature in the Help menu, or email us at bugs@company.com with detailed information about the issue."},
	{21, "general", "How do I join community discussions?",
		"You can join community discussions by browsing the forums, commenting on posts, or starting your own discussion thread."},
	{22, "technical", "What file formats are supported for uploads?",
		"We support common file formats including PDF, DOC, DOCX, JPG, PNG, GIF, and TXT files up to 10MB in size."},
	{23, "account", "How do I enable two-factor authentication?",
		"Go to Settings > Security > Two-Factor Authentication and follow the setup instructions using an authenticator app."},
	{24, "billing", "Can I switch between subscription plans?",
		"Yes, you can upgrade or downgrade your subscription plan at any time through Settings > Billing > Change Plan."},
	{25, "support", "How do I submit a feature request?",
		"You can submit feature requests through our feedback form in the Help menu or by contacting our support team directly."},
}
