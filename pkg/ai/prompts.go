package ai

import (
	"fmt"
	"strings"
)

// Prompt templates. Output format instructions are part of the client
// contract: the frontend parses the sections and JSON blocks below.

func analyzePrompt(code, language, analysisContext string) string {
	return fmt.Sprintf(`You are an expert %s developer and code reviewer. Analyze this code and provide specific, actionable suggestions for improvement.

Code to analyze:
`+"```%s\n%s\n```"+`

Context: %s

Please provide a detailed analysis in this exact format:

## Code Analysis

### Code Quality Score: [X/10]

### Strengths:
- [List what's good about the code]

### Improvement Suggestions:
1. **[Category]**: [Specific suggestion with example]
2. **[Category]**: [Specific suggestion with example]

### Security & Best Practices:
- [Security considerations]
- [Best practice recommendations]

### Performance Optimizations:
- [Performance improvements if applicable]

Keep suggestions practical and include code examples where helpful.`, language, language, code, analysisContext)
}

func findBugsPrompt(code, language string) string {
	return fmt.Sprintf(`You are a senior software engineer specializing in bug detection. Analyze this %s code for bugs, errors, and potential issues.

Code to analyze:
`+"```%s\n%s\n```"+`

Please identify issues in this exact JSON format:

`+"```json"+`
{
  "summary": "Found X potential issues in your code",
  "bugs": [
    {
      "line": 5,
      "type": "Logic Error",
      "severity": "High",
      "description": "Detailed description of the issue",
      "fix": "How to fix this issue",
      "example": "Code example of the fix"
    }
  ],
  "overallAssessment": "Overall code quality assessment"
}
`+"```"+`

Focus on syntax errors, logic errors, runtime errors, performance issues, security vulnerabilities, type safety issues, memory leaks and null pointer exceptions.

If no bugs are found, return a positive assessment with preventive suggestions.`, language, language, code)
}

var explainLevels = map[string]string{
	"beginner":     "Explain like I'm completely new to programming. Use simple terms, analogies, and avoid jargon.",
	"intermediate": "Explain with moderate technical detail, assuming basic programming knowledge.",
	"expert":       "Provide detailed technical explanation with advanced concepts, patterns, and implementation details.",
}

func explainPrompt(code, language, level string) string {
	instruction, ok := explainLevels[level]
	if !ok {
		level = "intermediate"
		instruction = explainLevels[level]
	}

	return fmt.Sprintf(`You are a programming instructor. %s

Explain this %s code:

`+"```%s\n%s\n```"+`

Please structure your explanation like this:

## Code Explanation (%s level)

### What This Code Does:
[High-level purpose and functionality]

### How It Works:
[Step-by-step breakdown]

### Key Concepts:
- **[Concept 1]**: [Explanation]
- **[Concept 2]**: [Explanation]

### Learning Points:
- [Important takeaway 1]
- [Important takeaway 2]

### Next Steps:
[Suggestions for further learning or improvements]

Make it engaging and educational!`, instruction, language, language, code, level)
}

func refactorPrompt(code, language string) string {
	return fmt.Sprintf(`You are an expert %s developer. Refactor this code to improve readability, maintainability, performance, and follow best practices.

Original Code:
`+"```%s\n%s\n```"+`

Please provide the refactored code in this exact format:

## Code Refactoring

### Refactored Code:
`+"```%s\n[Your improved code here]\n```"+`

### Improvements Made:
1. **[Category]**: [Explanation of change]
2. **[Category]**: [Explanation of change]

### Benefits:
- [Benefit 1]
- [Benefit 2]

### Additional Recommendations:
- [Future improvement suggestions]

Focus on code readability, performance, modern language features, design patterns, error handling and code organization.`, language, language, code, language)
}

func roadmapPrompt(userLevel string, preferredLanguages []string, goals string) string {
	return fmt.Sprintf(`Create a personalized learning roadmap for a %s developer.

Preferred Languages: %s
Goals: %s

Generate a comprehensive roadmap in this JSON format:

`+"```json"+`
{
  "roadmap": {
    "title": "Personalized Learning Path",
    "duration": "12 weeks",
    "description": "Tailored roadmap description",
    "milestones": [
      {
        "week": 1,
        "title": "Milestone title",
        "description": "What you'll learn this week",
        "topics": ["Topic 1", "Topic 2"],
        "projects": ["Project 1", "Project 2"],
        "resources": ["Resource 1", "Resource 2"],
        "estimatedHours": 10
      }
    ],
    "skillsToGain": ["Skill 1", "Skill 2"],
    "careerOutcomes": ["Outcome 1", "Outcome 2"]
  }
}
`+"```"+`

Make it practical, achievable, and aligned with current industry demands.`, userLevel, strings.Join(preferredLanguages, ", "), goals)
}

func challengePrompt(difficulty, topic string) string {
	return fmt.Sprintf(`Create a %s level coding challenge about %s.

Generate a complete challenge in this JSON format:

`+"```json"+`
{
  "challenge": {
    "title": "Challenge Title",
    "description": "Detailed problem description",
    "difficulty": "%s",
    "topic": "%s",
    "timeLimit": "30 minutes",
    "examples": [
      {"input": "Example input", "output": "Expected output", "explanation": "Why this output"}
    ],
    "constraints": ["Constraint 1", "Constraint 2"],
    "hints": ["Hint 1", "Hint 2"],
    "testCases": [
      {"input": "Test input", "expectedOutput": "Expected result", "isHidden": false}
    ],
    "solution": {
      "approach": "Solution approach explanation",
      "timeComplexity": "O(n)",
      "spaceComplexity": "O(1)",
      "code": "Sample solution code"
    }
  }
}
`+"```"+`

Make it engaging, educational, and appropriately challenging.`, difficulty, topic, difficulty, topic)
}

func buggyCodePrompt(language, difficulty string) string {
	return fmt.Sprintf(`Generate %s level buggy %s code for a bug hunt game.

Create realistic, educational bugs that developers commonly make.

Return in this JSON format:

`+"```json"+`
{
  "title": "Bug Hunt Challenge Title",
  "description": "What this code is supposed to do",
  "buggyCode": "Code with intentional bugs",
  "correctCode": "Fixed version of the code",
  "bugs": [
    {
      "line": 5,
      "type": "Bug Type",
      "severity": "High/Medium/Low",
      "hint": "Helpful hint for finding the bug",
      "explanation": "Detailed explanation of the bug and fix"
    }
  ],
  "difficulty": "%s",
  "estimatedTime": "5-10 minutes"
}
`+"```"+`

Bug types to include based on difficulty:
- Easy: syntax errors, typos, simple logic errors
- Medium: off-by-one errors, scope issues, type mismatches
- Hard: race conditions, memory leaks, complex logic errors

Make bugs realistic and educational!`, difficulty, language, difficulty)
}

func completePrompt(incompleteCode, language string) string {
	return fmt.Sprintf(`Complete this %s code by filling in the missing parts:

`+"```%s\n%s\n```"+`

Provide the completion in this JSON format:

`+"```json"+`
{
  "completedCode": "Full working code",
  "explanation": "Explanation of what was added and why",
  "keyPoints": ["Important point 1", "Important point 2"],
  "alternatives": [
    {
      "approach": "Alternative approach name",
      "code": "Alternative implementation",
      "pros": ["Advantage 1"],
      "cons": ["Disadvantage 1"]
    }
  ]
}
`+"```"+`

Focus on clean readable code, best practices, proper error handling and helpful comments.`, language, language, incompleteCode)
}
