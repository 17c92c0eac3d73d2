// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - AIRequest: text, user_id (optional)

Registration, login and add-skill take form fields rather than JSON.

# Response Types

  - UserInfoResponse: profile, placeholder stats, skills
  - AddSkillResponse: status, skill_id
  - AIResponse: response
  - AnalyticsResponse: total_users, queries_today, total_queries
  - ErrorResponse: error, message

# Domain Types

Rows as stored, with db tags for sqlx scanning:

  - User: the password hash is never serialized
  - Skill: name, percent, color, note
  - AIQuery: logged prompt/reply pair

# Constants

DefaultSkillColor is assigned to every new skill. The Placeholder* constants
feed ProfileStats until those figures are computed from real data.
*/
package models
