package openai

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "current_provider": {"type": "string"},
    "target_price": {"type": "number", "minimum": 0},
    "target_data": {"type": "number", "minimum": 0},
    "roaming": {"type": "array", "items": {"type": "string"}},
    "min_data_gb": {"type": "number", "minimum": 0},
    "byod": {"type": "boolean"}
  },
  "additionalProperties": false
}`

const extractionPromptTemplate = `You are a smart assistant helping a salesperson understand customer requirements for a phone plan. Extract the following fields from the user's message and return them as JSON. If a field is not mentioned, omit it entirely.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Fields:
- current_provider: the provider the customer currently uses (string, lowercase)
- target_price: the monthly price the customer is looking for (number)
- target_data: the data allowance the customer is looking for, converted to GB (number)
- roaming: countries the customer wants to roam in - vacationing, business, any form of roaming (list of lowercase country names)
- min_data_gb: any minimum data amount that is implied (number, GB)
- byod: true if "bring your own device" or "no contract" is mentioned

Rules:
- Omit fields that are not specified. Never invent values.
- Numeric fields must be JSON numbers, not strings.
- If the customer describes an example plan and wants something similar, take target_price and target_data from that plan.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The customer is using Rogers and pays $45 for 20GB. They need roaming in China and the U.S."
Output:
{
  "current_provider": "rogers",
  "target_price": 45,
  "target_data": 20,
  "roaming": ["china", "united states"]
}

Example (informal, no punctuation):
Input: "they want bring your own device and at least 30 gigs"
Output:
{
  "byod": true,
  "min_data_gb": 30
}

Example (nothing extractable):
Input: "thanks, that sounds good"
Output:
{}`

const followupPromptTemplate = `You're an assistant helping a salesperson gather missing information from a customer before suggesting a phone plan.

Based on the fields missing, generate a friendly and clear follow-up question that asks for the following: %s.

The tone should be helpful and concise. Do not assume anything. Only ask for the missing fields. Output the question text only.

Examples:
Missing fields: target_price -> "What is the customer's preferred price range?"
Missing fields: target_price, target_data -> "What is the customer's preferred price and how much data do they need?"`
